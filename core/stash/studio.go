package stash

import (
	"context"

	"go.uber.org/zap"
)

const queryFindStudio = studioFragment + `
query FindStudio($id: ID!) {
  findStudio(id: $id) {
    ...StudioData
  }
}`

const queryFindStudios = studioFragment + `
query FindStudios($filter: FindFilterType, $studio_filter: StudioFilterType) {
  findStudios(filter: $filter, studio_filter: $studio_filter) {
    count
    studios {
      ...StudioData
    }
  }
}`

const mutationStudioCreate = studioFragment + `
mutation StudioCreate($input: StudioCreateInput!) {
  studioCreate(input: $input) {
    ...StudioData
  }
}`

const mutationStudioUpdate = studioFragment + `
mutation StudioUpdate($input: StudioUpdateInput!) {
  studioUpdate(input: $input) {
    ...StudioData
  }
}`

// FindStudio returns the studio with the given ID.
func (c *Client) FindStudio(ctx context.Context, id string) (*Studio, error) {
	var resp struct {
		FindStudio *Studio `json:"findStudio"`
	}
	vars := map[string]any{"id": id}
	if err := c.find(ctx, entityStudio, "FindStudio", queryFindStudio, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindStudio == nil {
		return nil, ErrNotFound
	}
	return resp.FindStudio, nil
}

// FindStudios returns studios matching the filters plus the total count.
func (c *Client) FindStudios(ctx context.Context, filter FindFilter, studioFilter *StudioFilter) ([]Studio, int, error) {
	var resp struct {
		FindStudios struct {
			Count   int      `json:"count"`
			Studios []Studio `json:"studios"`
		} `json:"findStudios"`
	}
	vars := map[string]any{"filter": filter, "studio_filter": studioFilter}
	if err := c.find(ctx, entityStudio, "FindStudios", queryFindStudios, vars, &resp); err != nil {
		return nil, 0, err
	}
	return resp.FindStudios.Studios, resp.FindStudios.Count, nil
}

// FindStudioByName returns the studio with the exact name, or ErrNotFound.
func (c *Client) FindStudioByName(ctx context.Context, name string) (*Studio, error) {
	studios, _, err := c.FindStudios(ctx, FindFilter{PerPage: -1}, &StudioFilter{
		Name: EqualsCriterion(name),
	})
	if err != nil {
		return nil, err
	}
	if len(studios) == 0 {
		return nil, ErrNotFound
	}
	return &studios[0], nil
}

// FindStudiosByURL returns studios carrying a URL that contains the value.
func (c *Client) FindStudiosByURL(ctx context.Context, url string) ([]Studio, error) {
	studios, _, err := c.FindStudios(ctx, FindFilter{PerPage: -1}, &StudioFilter{
		URL: IncludesCriterion(url),
	})
	return studios, err
}

// CreateStudio creates a new studio.
func (c *Client) CreateStudio(ctx context.Context, input StudioCreateInput) (*Studio, error) {
	var resp struct {
		StudioCreate *Studio `json:"studioCreate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityStudio, "StudioCreate", mutationStudioCreate, vars, &resp); err != nil {
		return nil, err
	}
	c.logger.Info("Created studio", zap.String("id", resp.StudioCreate.ID), zap.String("name", input.Name))
	return resp.StudioCreate, nil
}

// UpdateStudio updates an existing studio.
func (c *Client) UpdateStudio(ctx context.Context, input StudioUpdateInput) (*Studio, error) {
	var resp struct {
		StudioUpdate *Studio `json:"studioUpdate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityStudio, "StudioUpdate", mutationStudioUpdate, vars, &resp); err != nil {
		return nil, err
	}
	if resp.StudioUpdate == nil {
		return nil, ErrNotFound
	}
	return resp.StudioUpdate, nil
}
