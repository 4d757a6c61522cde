package stash

import (
	"context"

	"go.uber.org/zap"
)

const queryFindPerformer = performerFragment + `
query FindPerformer($id: ID!) {
  findPerformer(id: $id) {
    ...PerformerData
  }
}`

const queryFindPerformers = performerFragment + `
query FindPerformers($filter: FindFilterType, $performer_filter: PerformerFilterType) {
  findPerformers(filter: $filter, performer_filter: $performer_filter) {
    count
    performers {
      ...PerformerData
    }
  }
}`

const mutationPerformerCreate = performerFragment + `
mutation PerformerCreate($input: PerformerCreateInput!) {
  performerCreate(input: $input) {
    ...PerformerData
  }
}`

const mutationPerformerUpdate = performerFragment + `
mutation PerformerUpdate($input: PerformerUpdateInput!) {
  performerUpdate(input: $input) {
    ...PerformerData
  }
}`

const mutationPerformerDestroy = `
mutation PerformerDestroy($input: PerformerDestroyInput!) {
  performerDestroy(input: $input)
}`

// FindPerformer returns the performer with the given ID.
func (c *Client) FindPerformer(ctx context.Context, id string) (*Performer, error) {
	var resp struct {
		FindPerformer *Performer `json:"findPerformer"`
	}
	vars := map[string]any{"id": id}
	if err := c.find(ctx, entityPerformer, "FindPerformer", queryFindPerformer, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindPerformer == nil {
		return nil, ErrNotFound
	}
	return resp.FindPerformer, nil
}

// FindPerformers returns performers matching the filters plus the total count.
func (c *Client) FindPerformers(ctx context.Context, filter FindFilter, performerFilter *PerformerFilter) ([]Performer, int, error) {
	var resp struct {
		FindPerformers struct {
			Count      int         `json:"count"`
			Performers []Performer `json:"performers"`
		} `json:"findPerformers"`
	}
	vars := map[string]any{"filter": filter, "performer_filter": performerFilter}
	if err := c.find(ctx, entityPerformer, "FindPerformers", queryFindPerformers, vars, &resp); err != nil {
		return nil, 0, err
	}
	return resp.FindPerformers.Performers, resp.FindPerformers.Count, nil
}

// FindPerformersByName returns performers whose name or alias list matches
// the given name exactly. Both lookups are needed because Stash indexes
// aliases separately from names.
func (c *Client) FindPerformersByName(ctx context.Context, name string) ([]Performer, error) {
	byName, _, err := c.FindPerformers(ctx, FindFilter{PerPage: -1}, &PerformerFilter{
		Name: EqualsCriterion(name),
	})
	if err != nil {
		return nil, err
	}

	byAlias, _, err := c.FindPerformers(ctx, FindFilter{PerPage: -1}, &PerformerFilter{
		Aliases: EqualsCriterion(name),
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(byName))
	merged := make([]Performer, 0, len(byName)+len(byAlias))
	for _, p := range byName {
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range byAlias {
		if _, dup := seen[p.ID]; !dup {
			merged = append(merged, p)
		}
	}
	return merged, nil
}

// FindPerformersByURL returns performers carrying a URL that contains the
// given value.
func (c *Client) FindPerformersByURL(ctx context.Context, url string) ([]Performer, error) {
	performers, _, err := c.FindPerformers(ctx, FindFilter{PerPage: -1}, &PerformerFilter{
		URL: IncludesCriterion(url),
	})
	return performers, err
}

// CreatePerformer creates a new performer.
func (c *Client) CreatePerformer(ctx context.Context, input PerformerCreateInput) (*Performer, error) {
	var resp struct {
		PerformerCreate *Performer `json:"performerCreate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityPerformer, "PerformerCreate", mutationPerformerCreate, vars, &resp); err != nil {
		return nil, err
	}
	c.logger.Info("Created performer", zap.String("id", resp.PerformerCreate.ID), zap.String("name", input.Name))
	return resp.PerformerCreate, nil
}

// UpdatePerformer updates an existing performer.
func (c *Client) UpdatePerformer(ctx context.Context, input PerformerUpdateInput) (*Performer, error) {
	var resp struct {
		PerformerUpdate *Performer `json:"performerUpdate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityPerformer, "PerformerUpdate", mutationPerformerUpdate, vars, &resp); err != nil {
		return nil, err
	}
	if resp.PerformerUpdate == nil {
		return nil, ErrNotFound
	}
	return resp.PerformerUpdate, nil
}

// DestroyPerformer deletes a performer.
func (c *Client) DestroyPerformer(ctx context.Context, id string) error {
	vars := map[string]any{"input": map[string]any{"id": id}}
	return c.mutate(ctx, entityPerformer, "PerformerDestroy", mutationPerformerDestroy, vars, nil)
}
