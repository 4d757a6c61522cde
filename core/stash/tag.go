package stash

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const queryFindTag = tagFragment + `
query FindTag($id: ID!) {
  findTag(id: $id) {
    ...TagData
  }
}`

const queryFindTags = tagFragment + `
query FindTags($filter: FindFilterType, $tag_filter: TagFilterType) {
  findTags(filter: $filter, tag_filter: $tag_filter) {
    count
    tags {
      ...TagData
    }
  }
}`

const mutationTagCreate = tagFragment + `
mutation TagCreate($input: TagCreateInput!) {
  tagCreate(input: $input) {
    ...TagData
  }
}`

const mutationTagDestroy = `
mutation TagDestroy($input: TagDestroyInput!) {
  tagDestroy(input: $input)
}`

// FindTag returns the tag with the given ID.
func (c *Client) FindTag(ctx context.Context, id string) (*Tag, error) {
	var resp struct {
		FindTag *Tag `json:"findTag"`
	}
	vars := map[string]any{"id": id}
	if err := c.find(ctx, entityTag, "FindTag", queryFindTag, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindTag == nil {
		return nil, ErrNotFound
	}
	return resp.FindTag, nil
}

// FindTags returns tags matching the filters plus the total count.
func (c *Client) FindTags(ctx context.Context, filter FindFilter, tagFilter *TagFilter) ([]Tag, int, error) {
	var resp struct {
		FindTags struct {
			Count int   `json:"count"`
			Tags  []Tag `json:"tags"`
		} `json:"findTags"`
	}
	vars := map[string]any{"filter": filter, "tag_filter": tagFilter}
	if err := c.find(ctx, entityTag, "FindTags", queryFindTags, vars, &resp); err != nil {
		return nil, 0, err
	}
	return resp.FindTags.Tags, resp.FindTags.Count, nil
}

// FindTagByName returns the tag with the exact name or alias, or ErrNotFound.
func (c *Client) FindTagByName(ctx context.Context, name string) (*Tag, error) {
	tags, _, err := c.FindTags(ctx, FindFilter{PerPage: -1}, &TagFilter{
		Name: EqualsCriterion(name),
	})
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		return &tags[0], nil
	}

	tags, _, err = c.FindTags(ctx, FindFilter{PerPage: -1}, &TagFilter{
		Aliases: EqualsCriterion(name),
	})
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		return &tags[0], nil
	}
	return nil, ErrNotFound
}

// CreateTag creates a new tag.
func (c *Client) CreateTag(ctx context.Context, input TagCreateInput) (*Tag, error) {
	var resp struct {
		TagCreate *Tag `json:"tagCreate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityTag, "TagCreate", mutationTagCreate, vars, &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("Created tag", zap.String("id", resp.TagCreate.ID), zap.String("name", input.Name))
	return resp.TagCreate, nil
}

// EnsureTag returns the tag with the given name, creating it if missing.
func (c *Client) EnsureTag(ctx context.Context, name string) (*Tag, error) {
	tag, err := c.FindTagByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return c.CreateTag(ctx, TagCreateInput{Name: name})
}

// DestroyTag deletes a tag.
func (c *Client) DestroyTag(ctx context.Context, id string) error {
	vars := map[string]any{"input": map[string]any{"id": id}}
	return c.mutate(ctx, entityTag, "TagDestroy", mutationTagDestroy, vars, nil)
}
