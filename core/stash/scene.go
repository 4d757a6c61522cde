package stash

import (
	"context"
	"regexp"

	"go.uber.org/zap"
)

const queryFindScene = sceneFragment + `
query FindScene($id: ID!) {
  findScene(id: $id) {
    ...SceneData
  }
}`

const queryFindScenes = sceneFragment + `
query FindScenes($filter: FindFilterType, $scene_filter: SceneFilterType) {
  findScenes(filter: $filter, scene_filter: $scene_filter) {
    count
    scenes {
      ...SceneData
    }
  }
}`

const mutationSceneCreate = sceneFragment + `
mutation SceneCreate($input: SceneCreateInput!) {
  sceneCreate(input: $input) {
    ...SceneData
  }
}`

const mutationSceneUpdate = sceneFragment + `
mutation SceneUpdate($input: SceneUpdateInput!) {
  sceneUpdate(input: $input) {
    ...SceneData
  }
}`

const mutationSceneDestroy = `
mutation SceneDestroy($input: SceneDestroyInput!) {
  sceneDestroy(input: $input)
}`

// FindScene returns the scene with the given ID.
func (c *Client) FindScene(ctx context.Context, id string) (*Scene, error) {
	var resp struct {
		FindScene *Scene `json:"findScene"`
	}
	vars := map[string]any{"id": id}
	if err := c.find(ctx, entityScene, "FindScene", queryFindScene, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindScene == nil {
		return nil, ErrNotFound
	}
	return resp.FindScene, nil
}

// FindScenes returns scenes matching the filters plus the total count.
func (c *Client) FindScenes(ctx context.Context, filter FindFilter, sceneFilter *SceneFilter) ([]Scene, int, error) {
	var resp struct {
		FindScenes struct {
			Count  int     `json:"count"`
			Scenes []Scene `json:"scenes"`
		} `json:"findScenes"`
	}
	vars := map[string]any{"filter": filter, "scene_filter": sceneFilter}
	if err := c.find(ctx, entityScene, "FindScenes", queryFindScenes, vars, &resp); err != nil {
		return nil, 0, err
	}
	return resp.FindScenes.Scenes, resp.FindScenes.Count, nil
}

// FindSceneByCode returns the scene whose code matches exactly, or
// ErrNotFound. Codes carry the source media ID, so at most one scene
// should match.
func (c *Client) FindSceneByCode(ctx context.Context, code string) (*Scene, error) {
	scenes, _, err := c.FindScenes(ctx, FindFilter{PerPage: -1}, &SceneFilter{
		Code: EqualsCriterion(code),
	})
	if err != nil {
		return nil, err
	}
	if len(scenes) == 0 {
		return nil, ErrNotFound
	}
	return &scenes[0], nil
}

// FindScenesByPathRegex returns scenes whose file path matches the regex.
func (c *Client) FindScenesByPathRegex(ctx context.Context, pattern string) ([]Scene, error) {
	scenes, _, err := c.FindScenes(ctx, FindFilter{PerPage: -1}, &SceneFilter{
		Path: RegexCriterion(pattern),
	})
	return scenes, err
}

// FindSceneByFragment resolves a scene from file fingerprints: an exact
// oshash hit first, then the file basename for files whose fingerprints
// Stash has not computed yet.
func (c *Client) FindSceneByFragment(ctx context.Context, oshash, basename string) (*Scene, error) {
	if oshash != "" {
		scenes, _, err := c.FindScenes(ctx, FindFilter{PerPage: -1}, &SceneFilter{
			Oshash: EqualsCriterion(oshash),
		})
		if err != nil {
			return nil, err
		}
		if len(scenes) > 0 {
			return &scenes[0], nil
		}
	}

	if basename == "" {
		return nil, ErrNotFound
	}
	candidates, err := c.FindScenesByPathRegex(ctx, regexp.QuoteMeta(basename)+"$")
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		for _, file := range candidates[i].Files {
			if file.Basename == basename {
				return &candidates[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

// CreateScene creates a new scene.
func (c *Client) CreateScene(ctx context.Context, input SceneCreateInput) (*Scene, error) {
	var resp struct {
		SceneCreate *Scene `json:"sceneCreate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityScene, "SceneCreate", mutationSceneCreate, vars, &resp); err != nil {
		return nil, err
	}
	c.logger.Info("Created scene", zap.String("id", resp.SceneCreate.ID), zap.String("title", input.Title))
	return resp.SceneCreate, nil
}

// UpdateScene updates an existing scene.
func (c *Client) UpdateScene(ctx context.Context, input SceneUpdateInput) (*Scene, error) {
	var resp struct {
		SceneUpdate *Scene `json:"sceneUpdate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityScene, "SceneUpdate", mutationSceneUpdate, vars, &resp); err != nil {
		return nil, err
	}
	if resp.SceneUpdate == nil {
		return nil, ErrNotFound
	}
	return resp.SceneUpdate, nil
}

// DestroyScene deletes a scene. Files on disk are left untouched.
func (c *Client) DestroyScene(ctx context.Context, id string) error {
	vars := map[string]any{"input": map[string]any{
		"id":               id,
		"delete_file":      false,
		"delete_generated": true,
	}}
	return c.mutate(ctx, entityScene, "SceneDestroy", mutationSceneDestroy, vars, nil)
}
