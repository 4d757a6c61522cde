package tagging

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"go.uber.org/zap"
)

// Service resolves hashtags to Stash tag IDs.
type Service struct {
	stash  *stash.Client
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewService creates a new tagging service.
func NewService(client *stash.Client, logger *zap.Logger) *Service {
	return &Service{
		stash:  client,
		logger: logger,
		cache:  make(map[string]string),
	}
}

// EnsureTags returns the Stash tag IDs for the given hashtags, creating
// missing tags. Empty and duplicate hashtags are skipped.
func (s *Service) EnsureTags(ctx context.Context, hashtags []source.Hashtag) ([]string, error) {
	ids := make([]string, 0, len(hashtags))
	seen := make(map[string]struct{}, len(hashtags))

	for _, hashtag := range hashtags {
		name := normalizeHashtag(hashtag.Value)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		id, err := s.ensureTag(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Service) ensureTag(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	id, hit := s.cache[name]
	s.mu.Unlock()
	if hit {
		return id, nil
	}

	tag, err := s.stash.EnsureTag(ctx, name)
	if err != nil {
		return "", fmt.Errorf("ensuring tag %q: %w", name, err)
	}

	s.mu.Lock()
	s.cache[name] = tag.ID
	s.mu.Unlock()
	return tag.ID, nil
}

// normalizeHashtag strips the leading '#' and surrounding whitespace and
// lowercases the value.
func normalizeHashtag(value string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "#")))
}
