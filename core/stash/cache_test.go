package stash

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelay(t *testing.T) {
	assert.Equal(t, 1*time.Second, backoffDelay(1))
	assert.Equal(t, 2*time.Second, backoffDelay(2))
	assert.Equal(t, 4*time.Second, backoffDelay(3))
	assert.Equal(t, 8*time.Second, backoffDelay(4))
	// Capped
	assert.Equal(t, 30*time.Second, backoffDelay(6))
	assert.Equal(t, 30*time.Second, backoffDelay(10))
}

func TestCacheKey(t *testing.T) {
	a := cacheKey(entityPerformer, "FindPerformer", map[string]any{"id": "1"})
	b := cacheKey(entityPerformer, "FindPerformer", map[string]any{"id": "1"})
	c := cacheKey(entityPerformer, "FindPerformer", map[string]any{"id": "2"})
	d := cacheKey(entityScene, "FindPerformer", map[string]any{"id": "1"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestFindCacheGetOrLoad(t *testing.T) {
	cache := newFindCache(time.Minute)

	loads := 0
	load := func() ([]byte, error) {
		loads++
		return []byte(`{"x":1}`), nil
	}

	first, err := cache.getOrLoad("k", entityScene, load)
	assert.NoError(t, err)
	second, err := cache.getOrLoad("k", entityScene, load)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads)
}

func TestFindCacheLoadErrorNotCached(t *testing.T) {
	cache := newFindCache(time.Minute)

	loads := 0
	_, err := cache.getOrLoad("k", entityScene, func() ([]byte, error) {
		loads++
		return nil, errors.New("boom")
	})
	assert.Error(t, err)

	data, err := cache.getOrLoad("k", entityScene, func() ([]byte, error) {
		loads++
		return []byte("ok"), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
	assert.Equal(t, 2, loads)
}

func TestFindCacheInvalidateByType(t *testing.T) {
	cache := newFindCache(time.Minute)

	loads := map[string]int{}
	load := func(key string) func() ([]byte, error) {
		return func() ([]byte, error) {
			loads[key]++
			return []byte(key), nil
		}
	}

	_, err := cache.getOrLoad("scene-key", entityScene, load("scene-key"))
	assert.NoError(t, err)
	_, err = cache.getOrLoad("performer-key", entityPerformer, load("performer-key"))
	assert.NoError(t, err)

	cache.invalidate(entityScene)

	// Scene entries reload, performer entries survive
	_, err = cache.getOrLoad("scene-key", entityScene, load("scene-key"))
	assert.NoError(t, err)
	_, err = cache.getOrLoad("performer-key", entityPerformer, load("performer-key"))
	assert.NoError(t, err)

	assert.Equal(t, 2, loads["scene-key"])
	assert.Equal(t, 1, loads["performer-key"])
}

func TestFindCacheDisabled(t *testing.T) {
	cache := newFindCache(0)

	loads := 0
	load := func() ([]byte, error) {
		loads++
		return []byte("x"), nil
	}

	_, err := cache.getOrLoad("k", entityScene, load)
	assert.NoError(t, err)
	_, err = cache.getOrLoad("k", entityScene, load)
	assert.NoError(t, err)
	assert.Equal(t, 2, loads)
}
