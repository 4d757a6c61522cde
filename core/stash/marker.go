package stash

import "context"

const queryMarkersForScene = markerFragment + `
query FindScene($id: ID!) {
  findScene(id: $id) {
    scene_markers {
      ...MarkerData
    }
  }
}`

const mutationMarkerCreate = markerFragment + `
mutation SceneMarkerCreate($input: SceneMarkerCreateInput!) {
  sceneMarkerCreate(input: $input) {
    ...MarkerData
  }
}`

const mutationMarkerDestroy = `
mutation SceneMarkerDestroy($id: ID!) {
  sceneMarkerDestroy(id: $id)
}`

// MarkersForScene returns the markers attached to a scene.
func (c *Client) MarkersForScene(ctx context.Context, sceneID string) ([]SceneMarker, error) {
	var resp struct {
		FindScene *struct {
			SceneMarkers []SceneMarker `json:"scene_markers"`
		} `json:"findScene"`
	}
	vars := map[string]any{"id": sceneID}
	if err := c.find(ctx, entityMarker, "MarkersForScene", queryMarkersForScene, vars, &resp); err != nil {
		return nil, err
	}
	if resp.FindScene == nil {
		return nil, ErrNotFound
	}
	markers := resp.FindScene.SceneMarkers
	for i := range markers {
		markers[i].SceneID = sceneID
	}
	return markers, nil
}

// CreateMarker creates a scene marker.
func (c *Client) CreateMarker(ctx context.Context, input SceneMarkerCreateInput) (*SceneMarker, error) {
	var resp struct {
		SceneMarkerCreate *SceneMarker `json:"sceneMarkerCreate"`
	}
	vars := map[string]any{"input": input}
	if err := c.mutate(ctx, entityMarker, "SceneMarkerCreate", mutationMarkerCreate, vars, &resp); err != nil {
		return nil, err
	}
	resp.SceneMarkerCreate.SceneID = input.SceneID
	return resp.SceneMarkerCreate, nil
}

// DestroyMarker deletes a scene marker.
func (c *Client) DestroyMarker(ctx context.Context, id string) error {
	vars := map[string]any{"id": id}
	return c.mutate(ctx, entityMarker, "SceneMarkerDestroy", mutationMarkerDestroy, vars, nil)
}
