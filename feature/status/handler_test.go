package status_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stash-bridge/core/mediastore/mocks"
	"stash-bridge/core/runs"
	"stash-bridge/core/stash"
	"stash-bridge/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, stashHandler http.HandlerFunc, bucketExists bool, registry *runs.Registry) *fiber.App {
	t.Helper()

	server := httptest.NewServer(stashHandler)
	t.Cleanup(server.Close)

	client, err := stash.NewClient(stash.Config{URL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
	assert.NoError(t, err)

	mockArchive := new(mocks.Client)
	mockArchive.On("BucketExists", mock.Anything, "archive").Return(bucketExists, nil)

	svc := status.NewService(client, nil, mockArchive, "archive", registry, zap.NewNop())
	h := status.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func stashVersionOK(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"data":{"version":{"version":"v0.27.2","hash":"","build_time":""}}}`))
}

func TestHandleHealthOK(t *testing.T) {
	app := setupApp(t, stashVersionOK, true, runs.NewRegistry())

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), 5000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var health status.Health
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Stash)
	assert.Equal(t, "not configured", health.Source)
	assert.Equal(t, "ok", health.Archive)
}

func TestHandleHealthDegraded(t *testing.T) {
	app := setupApp(t, stashVersionOK, false, runs.NewRegistry())

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), 5000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var health status.Health
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "bucket missing", health.Archive)
}

func TestHandleListRuns(t *testing.T) {
	registry := runs.NewRegistry()
	id := registry.Begin("scenes", "janedoe", 5)
	registry.Finish(id, []string{"media 3: no scene"}, nil)

	app := setupApp(t, stashVersionOK, true, registry)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs", nil), 5000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var list []runs.Run
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, runs.StatusCompleted, list[0].Status)
}

func TestHandleGetRun(t *testing.T) {
	registry := runs.NewRegistry()
	id := registry.Begin("galleries", "janedoe", 2)

	app := setupApp(t, stashVersionOK, true, registry)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs/"+id, nil), 5000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var run runs.Run
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, "galleries", run.Kind)
}

func TestHandleGetRunUnknown(t *testing.T) {
	app := setupApp(t, stashVersionOK, true, runs.NewRegistry())

	resp, err := app.Test(httptest.NewRequest("GET", "/runs/nope", nil), 5000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
