package stash

// PerformerCreateInput mirrors the Stash PerformerCreateInput type.
type PerformerCreateInput struct {
	Name           string   `json:"name"`
	Disambiguation string   `json:"disambiguation,omitempty"`
	URLs           []string `json:"urls,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Birthdate      string   `json:"birthdate,omitempty"`
	Country        string   `json:"country,omitempty"`
	Aliases        []string `json:"alias_list,omitempty"`
	Details        string   `json:"details,omitempty"`
	Image          string   `json:"image,omitempty"`
	TagIDs         []string `json:"tag_ids,omitempty"`
}

// PerformerUpdateInput mirrors the Stash PerformerUpdateInput type.
// Pointer fields distinguish "unset" from "clear".
type PerformerUpdateInput struct {
	ID             string    `json:"id"`
	Name           *string   `json:"name,omitempty"`
	Disambiguation *string   `json:"disambiguation,omitempty"`
	URLs           *[]string `json:"urls,omitempty"`
	Country        *string   `json:"country,omitempty"`
	Aliases        *[]string `json:"alias_list,omitempty"`
	Details        *string   `json:"details,omitempty"`
	Image          *string   `json:"image,omitempty"`
	Favorite       *bool     `json:"favorite,omitempty"`
	TagIDs         *[]string `json:"tag_ids,omitempty"`
}

// UpdateInput returns an update input pre-populated with the performer's
// current mutable fields, ready for selective modification.
func (p *Performer) UpdateInput() PerformerUpdateInput {
	name := p.Name
	urls := append([]string(nil), p.URLs...)
	aliases := append([]string(nil), p.Aliases...)
	details := p.Details
	return PerformerUpdateInput{
		ID:      p.ID,
		Name:    &name,
		URLs:    &urls,
		Aliases: &aliases,
		Details: &details,
	}
}

// StudioCreateInput mirrors the Stash StudioCreateInput type.
type StudioCreateInput struct {
	Name     string   `json:"name"`
	URL      string   `json:"url,omitempty"`
	ParentID string   `json:"parent_id,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	Details  string   `json:"details,omitempty"`
	Image    string   `json:"image,omitempty"`
}

// StudioUpdateInput mirrors the Stash StudioUpdateInput type.
type StudioUpdateInput struct {
	ID       string    `json:"id"`
	Name     *string   `json:"name,omitempty"`
	URL      *string   `json:"url,omitempty"`
	ParentID *string   `json:"parent_id,omitempty"`
	Aliases  *[]string `json:"aliases,omitempty"`
	Details  *string   `json:"details,omitempty"`
	Image    *string   `json:"image,omitempty"`
}

// UpdateInput returns an update input pre-populated with the studio's
// current mutable fields.
func (s *Studio) UpdateInput() StudioUpdateInput {
	name := s.Name
	url := s.URL
	aliases := append([]string(nil), s.Aliases...)
	in := StudioUpdateInput{
		ID:      s.ID,
		Name:    &name,
		URL:     &url,
		Aliases: &aliases,
	}
	if s.ParentStudio != nil {
		parent := s.ParentStudio.ID
		in.ParentID = &parent
	}
	return in
}

// TagCreateInput mirrors the Stash TagCreateInput type.
type TagCreateInput struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SceneCreateInput mirrors the Stash SceneCreateInput type.
type SceneCreateInput struct {
	Title        string   `json:"title,omitempty"`
	Code         string   `json:"code,omitempty"`
	Details      string   `json:"details,omitempty"`
	URLs         []string `json:"urls,omitempty"`
	Date         string   `json:"date,omitempty"`
	StudioID     string   `json:"studio_id,omitempty"`
	PerformerIDs []string `json:"performer_ids,omitempty"`
	TagIDs       []string `json:"tag_ids,omitempty"`
	GalleryIDs   []string `json:"gallery_ids,omitempty"`
	FileIDs      []string `json:"file_ids,omitempty"`
}

// SceneUpdateInput mirrors the Stash SceneUpdateInput type.
type SceneUpdateInput struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title,omitempty"`
	Code         *string   `json:"code,omitempty"`
	Details      *string   `json:"details,omitempty"`
	URLs         *[]string `json:"urls,omitempty"`
	Date         *string   `json:"date,omitempty"`
	Organized    *bool     `json:"organized,omitempty"`
	StudioID     *string   `json:"studio_id,omitempty"`
	PerformerIDs *[]string `json:"performer_ids,omitempty"`
	TagIDs       *[]string `json:"tag_ids,omitempty"`
	GalleryIDs   *[]string `json:"gallery_ids,omitempty"`
}

// UpdateInput returns an update input pre-populated with the scene's
// current mutable fields.
func (s *Scene) UpdateInput() SceneUpdateInput {
	title := s.Title
	code := s.Code
	details := s.Details
	urls := append([]string(nil), s.URLs...)
	date := s.Date
	performerIDs := s.PerformerIDs()
	tagIDs := s.TagIDs()
	in := SceneUpdateInput{
		ID:           s.ID,
		Title:        &title,
		Code:         &code,
		Details:      &details,
		URLs:         &urls,
		Date:         &date,
		PerformerIDs: &performerIDs,
		TagIDs:       &tagIDs,
	}
	if s.Studio != nil {
		studioID := s.Studio.ID
		in.StudioID = &studioID
	}
	return in
}

// GalleryCreateInput mirrors the Stash GalleryCreateInput type.
type GalleryCreateInput struct {
	Title        string   `json:"title"`
	Code         string   `json:"code,omitempty"`
	Date         string   `json:"date,omitempty"`
	Details      string   `json:"details,omitempty"`
	URLs         []string `json:"urls,omitempty"`
	StudioID     string   `json:"studio_id,omitempty"`
	PerformerIDs []string `json:"performer_ids,omitempty"`
	TagIDs       []string `json:"tag_ids,omitempty"`
	SceneIDs     []string `json:"scene_ids,omitempty"`
}

// GalleryUpdateInput mirrors the Stash GalleryUpdateInput type.
type GalleryUpdateInput struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title,omitempty"`
	Code         *string   `json:"code,omitempty"`
	Date         *string   `json:"date,omitempty"`
	Details      *string   `json:"details,omitempty"`
	URLs         *[]string `json:"urls,omitempty"`
	Organized    *bool     `json:"organized,omitempty"`
	StudioID     *string   `json:"studio_id,omitempty"`
	PerformerIDs *[]string `json:"performer_ids,omitempty"`
	TagIDs       *[]string `json:"tag_ids,omitempty"`
	SceneIDs     *[]string `json:"scene_ids,omitempty"`
}

// UpdateInput returns an update input pre-populated with the gallery's
// current mutable fields.
func (g *Gallery) UpdateInput() GalleryUpdateInput {
	title := g.Title
	code := g.Code
	date := g.Date
	details := g.Details
	urls := append([]string(nil), g.URLs...)
	performerIDs := make([]string, 0, len(g.Performers))
	for _, p := range g.Performers {
		performerIDs = append(performerIDs, p.ID)
	}
	tagIDs := make([]string, 0, len(g.Tags))
	for _, t := range g.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	in := GalleryUpdateInput{
		ID:           g.ID,
		Title:        &title,
		Code:         &code,
		Date:         &date,
		Details:      &details,
		URLs:         &urls,
		PerformerIDs: &performerIDs,
		TagIDs:       &tagIDs,
	}
	if g.Studio != nil {
		studioID := g.Studio.ID
		in.StudioID = &studioID
	}
	return in
}

// ImageUpdateInput mirrors the Stash ImageUpdateInput type.
type ImageUpdateInput struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title,omitempty"`
	Code         *string   `json:"code,omitempty"`
	URLs         *[]string `json:"urls,omitempty"`
	Date         *string   `json:"date,omitempty"`
	Organized    *bool     `json:"organized,omitempty"`
	StudioID     *string   `json:"studio_id,omitempty"`
	PerformerIDs *[]string `json:"performer_ids,omitempty"`
	TagIDs       *[]string `json:"tag_ids,omitempty"`
	GalleryIDs   *[]string `json:"gallery_ids,omitempty"`
}

// SceneMarkerCreateInput mirrors the Stash SceneMarkerCreateInput type.
type SceneMarkerCreateInput struct {
	SceneID      string   `json:"scene_id"`
	Title        string   `json:"title"`
	Seconds      float64  `json:"seconds"`
	PrimaryTagID string   `json:"primary_tag_id"`
	TagIDs       []string `json:"tag_ids,omitempty"`
}
