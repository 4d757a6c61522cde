package stash

// FindFilter mirrors the Stash FindFilterType used for paging and search.
type FindFilter struct {
	Query     string `json:"q,omitempty"`
	Page      int    `json:"page,omitempty"`
	PerPage   int    `json:"per_page,omitempty"`
	Sort      string `json:"sort,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// Criterion modifiers accepted by Stash filter inputs.
const (
	ModifierEquals   = "EQUALS"
	ModifierIncludes = "INCLUDES"
	ModifierMatches  = "MATCHES_REGEX"
)

// StringCriterion mirrors the Stash StringCriterionInput type.
type StringCriterion struct {
	Value    string `json:"value"`
	Modifier string `json:"modifier"`
}

// PerformerFilter is the subset of PerformerFilterType the client uses.
type PerformerFilter struct {
	Name    *StringCriterion `json:"name,omitempty"`
	Aliases *StringCriterion `json:"aliases,omitempty"`
	URL     *StringCriterion `json:"url,omitempty"`
}

// StudioFilter is the subset of StudioFilterType the client uses.
type StudioFilter struct {
	Name    *StringCriterion `json:"name,omitempty"`
	Aliases *StringCriterion `json:"aliases,omitempty"`
	URL     *StringCriterion `json:"url,omitempty"`
}

// TagFilter is the subset of TagFilterType the client uses.
type TagFilter struct {
	Name    *StringCriterion `json:"name,omitempty"`
	Aliases *StringCriterion `json:"aliases,omitempty"`
}

// SceneFilter is the subset of SceneFilterType the client uses.
type SceneFilter struct {
	Code   *StringCriterion `json:"code,omitempty"`
	Path   *StringCriterion `json:"path,omitempty"`
	URL    *StringCriterion `json:"url,omitempty"`
	Oshash *StringCriterion `json:"oshash,omitempty"`
}

// GalleryFilter is the subset of GalleryFilterType the client uses.
type GalleryFilter struct {
	Code  *StringCriterion `json:"code,omitempty"`
	Title *StringCriterion `json:"title,omitempty"`
	URL   *StringCriterion `json:"url,omitempty"`
}

// ImageFilter is the subset of ImageFilterType the client uses.
type ImageFilter struct {
	Code *StringCriterion `json:"code,omitempty"`
	Path *StringCriterion `json:"path,omitempty"`
}

// EqualsCriterion builds an exact-match criterion.
func EqualsCriterion(value string) *StringCriterion {
	return &StringCriterion{Value: value, Modifier: ModifierEquals}
}

// IncludesCriterion builds a substring-match criterion.
func IncludesCriterion(value string) *StringCriterion {
	return &StringCriterion{Value: value, Modifier: ModifierIncludes}
}

// RegexCriterion builds a regex-match criterion.
func RegexCriterion(value string) *StringCriterion {
	return &StringCriterion{Value: value, Modifier: ModifierMatches}
}
