package runs_test

import (
	"errors"
	"testing"

	"stash-bridge/core/runs"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLifecycle(t *testing.T) {
	registry := runs.NewRegistry()

	id := registry.Begin("scenes", "janedoe", 10)
	assert.NotEmpty(t, id)

	run, ok := registry.Get(id)
	assert.True(t, ok)
	assert.Equal(t, runs.StatusRunning, run.Status)
	assert.Equal(t, "scenes", run.Kind)
	assert.Equal(t, "janedoe", run.Account)
	assert.Equal(t, 10, run.Total)
	assert.Nil(t, run.FinishedAt)

	registry.Progress(id, 4, 10)
	run, _ = registry.Get(id)
	assert.Equal(t, 4, run.Done)

	registry.Finish(id, []string{"media 7: no scene"}, nil)
	run, _ = registry.Get(id)
	assert.Equal(t, runs.StatusCompleted, run.Status)
	assert.Equal(t, []string{"media 7: no scene"}, run.Errors)
	assert.NotNil(t, run.FinishedAt)
}

func TestRegistryFinishWithHardError(t *testing.T) {
	registry := runs.NewRegistry()
	id := registry.Begin("galleries", "janedoe", 3)

	registry.Finish(id, []string{"post 1: missing"}, errors.New("context canceled"))

	run, ok := registry.Get(id)
	assert.True(t, ok)
	assert.Equal(t, runs.StatusFailed, run.Status)
	assert.Equal(t, []string{"post 1: missing", "context canceled"}, run.Errors)
}

func TestRegistryListNewestFirst(t *testing.T) {
	registry := runs.NewRegistry()

	first := registry.Begin("scenes", "a", 1)
	second := registry.Begin("galleries", "b", 2)

	list := registry.List()
	assert.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := runs.NewRegistry()
	_, ok := registry.Get("nope")
	assert.False(t, ok)
}

func TestRegistrySnapshotsAreCopies(t *testing.T) {
	registry := runs.NewRegistry()
	id := registry.Begin("scenes", "a", 1)
	registry.Finish(id, []string{"original"}, nil)

	run, _ := registry.Get(id)
	run.Errors[0] = "mutated"

	again, _ := registry.Get(id)
	assert.Equal(t, []string{"original"}, again.Errors)
}
