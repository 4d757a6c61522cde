package stash

import "context"

const queryFindImage = imageFragment + `
query FindImage($id: ID!) {
  findImage(id: $id) {
    ...ImageData
  }
}`

const queryFindImages = imageFragment + `
query FindImages($filter: FindFilterType, $image_filter: ImageFilterType) {
  findImages(filter: $filter, image_filter: $image_filter) {
    count
    images {
      ...ImageData
    }
  }
}`

const mutationImageUpdate = imageFragment + `
mutation ImageUpdate($input: ImageUpdateInput!) {
  imageUpdate(input: $input) {
    ...ImageData
  }
}`

// FindImage returns the image with the given ID.
func (c *Client) FindImage(ctx context.Context, id string) (*Image, error) {
	var resp struct {
		FindImage *Image `json:"findImage"`
	}
	vars := map[string]any{"id": id}
	if err := c.find(ctx, entityImage, "FindImage", queryFindImage, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindImage == nil {
		return nil, ErrNotFound
	}
	return resp.FindImage, nil
}

// FindImages returns images matching the filters plus the total count.
func (c *Client) FindImages(ctx context.Context, filter FindFilter, imageFilter *ImageFilter) ([]Image, int, error) {
	var resp struct {
		FindImages struct {
			Count  int     `json:"count"`
			Images []Image `json:"images"`
		} `json:"findImages"`
	}
	vars := map[string]any{"filter": filter, "image_filter": imageFilter}
	if err := c.find(ctx, entityImage, "FindImages", queryFindImages, vars, &resp); err != nil {
		return nil, 0, err
	}
	return resp.FindImages.Images, resp.FindImages.Count, nil
}

// FindImagesByPathRegex returns images whose file path matches the regex.
func (c *Client) FindImagesByPathRegex(ctx context.Context, pattern string) ([]Image, error) {
	images, _, err := c.FindImages(ctx, FindFilter{PerPage: -1}, &ImageFilter{
		Path: RegexCriterion(pattern),
	})
	return images, err
}

// UpdateImage updates an existing image.
func (c *Client) UpdateImage(ctx context.Context, input ImageUpdateInput) (*Image, error) {
	var resp struct {
		ImageUpdate *Image `json:"imageUpdate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityImage, "ImageUpdate", mutationImageUpdate, vars, &resp); err != nil {
		return nil, err
	}
	if resp.ImageUpdate == nil {
		return nil, ErrNotFound
	}
	return resp.ImageUpdate, nil
}
