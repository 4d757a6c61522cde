package stash

import "time"

// Entity type names used for cache scoping.
const (
	entityScene     = "scene"
	entityPerformer = "performer"
	entityStudio    = "studio"
	entityTag       = "tag"
	entityGallery   = "gallery"
	entityImage     = "image"
	entityMarker    = "marker"
)

// VideoFile represents a file backing a scene.
type VideoFile struct {
	ID       string  `json:"id"`
	Path     string  `json:"path"`
	Basename string  `json:"basename"`
	Size     int64   `json:"size"`
	Duration float64 `json:"duration"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// ImageFile represents a file backing an image.
type ImageFile struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Basename string `json:"basename"`
	Size     int64  `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Scene mirrors the Stash Scene type.
type Scene struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Code       string      `json:"code"`
	Details    string      `json:"details"`
	URLs       []string    `json:"urls"`
	Date       string      `json:"date"`
	Organized  bool        `json:"organized"`
	Files      []VideoFile `json:"files"`
	Studio     *Studio     `json:"studio"`
	Performers []Performer `json:"performers"`
	Tags       []Tag       `json:"tags"`
	Galleries  []Gallery   `json:"galleries"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Performer mirrors the Stash Performer type.
type Performer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Disambiguation string   `json:"disambiguation"`
	URLs           []string `json:"urls"`
	Gender         string   `json:"gender"`
	Birthdate      string   `json:"birthdate"`
	Country        string   `json:"country"`
	Aliases        []string `json:"alias_list"`
	Details        string   `json:"details"`
	Favorite       bool     `json:"favorite"`
	ImagePath      string   `json:"image_path"`
	Tags           []Tag    `json:"tags"`
}

// Studio mirrors the Stash Studio type.
type Studio struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Aliases      []string `json:"aliases"`
	Details      string   `json:"details"`
	ParentStudio *Studio  `json:"parent_studio"`
}

// Tag mirrors the Stash Tag type.
type Tag struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
}

// Gallery mirrors the Stash Gallery type.
type Gallery struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Code       string      `json:"code"`
	Date       string      `json:"date"`
	Details    string      `json:"details"`
	URLs       []string    `json:"urls"`
	Organized  bool        `json:"organized"`
	Studio     *Studio     `json:"studio"`
	Performers []Performer `json:"performers"`
	Tags       []Tag       `json:"tags"`
	ImageCount int         `json:"image_count"`
}

// Image mirrors the Stash Image type.
type Image struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Code       string      `json:"code"`
	URLs       []string    `json:"urls"`
	Date       string      `json:"date"`
	Organized  bool        `json:"organized"`
	Files      []ImageFile `json:"visual_files"`
	Studio     *Studio     `json:"studio"`
	Performers []Performer `json:"performers"`
	Tags       []Tag       `json:"tags"`
	Galleries  []Gallery   `json:"galleries"`
}

// SceneMarker mirrors the Stash SceneMarker type.
type SceneMarker struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Seconds    float64 `json:"seconds"`
	PrimaryTag Tag     `json:"primary_tag"`
	Tags       []Tag   `json:"tags"`
	SceneID    string  `json:"-"`
}

// PerformerIDs returns the IDs of the scene's performers.
func (s *Scene) PerformerIDs() []string {
	ids := make([]string, 0, len(s.Performers))
	for _, p := range s.Performers {
		ids = append(ids, p.ID)
	}
	return ids
}

// TagIDs returns the IDs of the scene's tags.
func (s *Scene) TagIDs() []string {
	ids := make([]string, 0, len(s.Tags))
	for _, t := range s.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// HasURL reports whether the performer already carries the given URL,
// compared loosely (scheme and trailing slash insensitive).
func (p *Performer) HasURL(url string) bool {
	for _, existing := range p.URLs {
		if NormalizeURL(existing) == NormalizeURL(url) {
			return true
		}
	}
	return false
}

// HasURL reports whether the gallery already carries the given URL.
func (g *Gallery) HasURL(url string) bool {
	for _, existing := range g.URLs {
		if NormalizeURL(existing) == NormalizeURL(url) {
			return true
		}
	}
	return false
}
