package tagging_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"stash-bridge/core/source"
	"stash-bridge/core/stash"
	"stash-bridge/feature/tagging"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newStashClient(t *testing.T, handler http.HandlerFunc) *stash.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := stash.NewClient(stash.Config{URL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
	assert.NoError(t, err)
	return client
}

func TestEnsureTagsCreatesMissing(t *testing.T) {
	var creates int32
	client := newStashClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.Contains(req.Query, "query FindTags("):
			// Nothing exists yet
			w.Write([]byte(`{"data":{"findTags":{"count":0,"tags":[]}}}`))
		case strings.Contains(req.Query, "mutation TagCreate("):
			atomic.AddInt32(&creates, 1)
			input, _ := req.Variables["input"].(map[string]any)
			name, _ := input["name"].(string)
			fmt.Fprintf(w, `{"data":{"tagCreate":{"id":"tag-%s","name":"%s"}}}`, name, name)
		default:
			t.Errorf("unexpected query: %s", req.Query)
		}
	})

	service := tagging.NewService(client, zap.NewNop())

	hashtags := []source.Hashtag{
		{Value: "#Beach"},
		{Value: "beach"},  // duplicate after normalization
		{Value: "   "},    // empty, skipped
		{Value: "#summer"},
	}

	ids, err := service.EnsureTags(context.Background(), hashtags)
	assert.NoError(t, err)
	assert.Equal(t, []string{"tag-beach", "tag-summer"}, ids)
	assert.Equal(t, int32(2), atomic.LoadInt32(&creates))

	// Resolved names are served from the service cache
	ids, err = service.EnsureTags(context.Background(), hashtags[:1])
	assert.NoError(t, err)
	assert.Equal(t, []string{"tag-beach"}, ids)
	assert.Equal(t, int32(2), atomic.LoadInt32(&creates))
}

func TestEnsureTagsReusesExisting(t *testing.T) {
	client := newStashClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(req.Query, "mutation TagCreate(") {
			t.Error("existing tag must not be recreated")
			return
		}
		w.Write([]byte(`{"data":{"findTags":{"count":1,"tags":[{"id":"42","name":"beach"}]}}}`))
	})

	service := tagging.NewService(client, zap.NewNop())

	ids, err := service.EnsureTags(context.Background(), []source.Hashtag{{Value: "#beach"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"42"}, ids)
}
