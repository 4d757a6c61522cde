package stash

import (
	"context"

	"go.uber.org/zap"
)

const queryFindGallery = galleryFragment + `
query FindGallery($id: ID!) {
  findGallery(id: $id) {
    ...GalleryData
  }
}`

const queryFindGalleries = galleryFragment + `
query FindGalleries($filter: FindFilterType, $gallery_filter: GalleryFilterType) {
  findGalleries(filter: $filter, gallery_filter: $gallery_filter) {
    count
    galleries {
      ...GalleryData
    }
  }
}`

const mutationGalleryCreate = galleryFragment + `
mutation GalleryCreate($input: GalleryCreateInput!) {
  galleryCreate(input: $input) {
    ...GalleryData
  }
}`

const mutationGalleryUpdate = galleryFragment + `
mutation GalleryUpdate($input: GalleryUpdateInput!) {
  galleryUpdate(input: $input) {
    ...GalleryData
  }
}`

const mutationGalleryDestroy = `
mutation GalleryDestroy($input: GalleryDestroyInput!) {
  galleryDestroy(input: $input)
}`

const mutationAddGalleryImages = `
mutation AddGalleryImages($input: GalleryAddInput!) {
  addGalleryImages(input: $input)
}`

// FindGallery returns the gallery with the given ID.
func (c *Client) FindGallery(ctx context.Context, id string) (*Gallery, error) {
	var resp struct {
		FindGallery *Gallery `json:"findGallery"`
	}
	vars := map[string]any{"id": id}
	if err := c.find(ctx, entityGallery, "FindGallery", queryFindGallery, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindGallery == nil {
		return nil, ErrNotFound
	}
	return resp.FindGallery, nil
}

// FindGalleries returns galleries matching the filters plus the total count.
func (c *Client) FindGalleries(ctx context.Context, filter FindFilter, galleryFilter *GalleryFilter) ([]Gallery, int, error) {
	var resp struct {
		FindGalleries struct {
			Count     int       `json:"count"`
			Galleries []Gallery `json:"galleries"`
		} `json:"findGalleries"`
	}
	vars := map[string]any{"filter": filter, "gallery_filter": galleryFilter}
	if err := c.find(ctx, entityGallery, "FindGalleries", queryFindGalleries, vars, &resp); err != nil {
		return nil, 0, err
	}
	return resp.FindGalleries.Galleries, resp.FindGalleries.Count, nil
}

// FindGalleryByCode returns the gallery whose code matches exactly, or
// ErrNotFound.
func (c *Client) FindGalleryByCode(ctx context.Context, code string) (*Gallery, error) {
	galleries, _, err := c.FindGalleries(ctx, FindFilter{PerPage: -1}, &GalleryFilter{
		Code: EqualsCriterion(code),
	})
	if err != nil {
		return nil, err
	}
	if len(galleries) == 0 {
		return nil, ErrNotFound
	}
	return &galleries[0], nil
}

// FindGalleriesByTitle returns galleries whose title matches exactly.
func (c *Client) FindGalleriesByTitle(ctx context.Context, title string) ([]Gallery, error) {
	galleries, _, err := c.FindGalleries(ctx, FindFilter{PerPage: -1}, &GalleryFilter{
		Title: EqualsCriterion(title),
	})
	return galleries, err
}

// CreateGallery creates a new gallery.
func (c *Client) CreateGallery(ctx context.Context, input GalleryCreateInput) (*Gallery, error) {
	var resp struct {
		GalleryCreate *Gallery `json:"galleryCreate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityGallery, "GalleryCreate", mutationGalleryCreate, vars, &resp); err != nil {
		return nil, err
	}
	c.logger.Info("Created gallery", zap.String("id", resp.GalleryCreate.ID), zap.String("title", input.Title))
	return resp.GalleryCreate, nil
}

// UpdateGallery updates an existing gallery.
func (c *Client) UpdateGallery(ctx context.Context, input GalleryUpdateInput) (*Gallery, error) {
	var resp struct {
		GalleryUpdate *Gallery `json:"galleryUpdate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityGallery, "GalleryUpdate", mutationGalleryUpdate, vars, &resp); err != nil {
		return nil, err
	}
	if resp.GalleryUpdate == nil {
		return nil, ErrNotFound
	}
	return resp.GalleryUpdate, nil
}

// DestroyGallery deletes a gallery. Image files are left untouched.
func (c *Client) DestroyGallery(ctx context.Context, id string) error {
	vars := map[string]any{"input": map[string]any{
		"ids":         []string{id},
		"delete_file": false,
	}}
	return c.mutate(ctx, entityGallery, "GalleryDestroy", mutationGalleryDestroy, vars, nil)
}

// AddGalleryImages attaches images to a gallery.
func (c *Client) AddGalleryImages(ctx context.Context, galleryID string, imageIDs []string) error {
	vars := map[string]any{"input": map[string]any{
		"gallery_id": galleryID,
		"image_ids":  imageIDs,
	}}
	if err := c.mutate(ctx, entityGallery, "AddGalleryImages", mutationAddGalleryImages, vars, nil); err != nil {
		return err
	}
	// Image-to-gallery links show up on the image side as well
	c.cache.invalidate(entityImage)
	return nil
}
