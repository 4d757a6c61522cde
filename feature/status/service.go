package status

import (
	"context"

	"stash-bridge/core/mediastore"
	"stash-bridge/core/runs"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"go.uber.org/zap"
)

// Health reports the connectivity of each dependency.
type Health struct {
	Stash   string `json:"stash"`
	Source  string `json:"source"`
	Archive string `json:"archive"`
}

// OK reports whether every configured dependency is reachable. The source
// database is optional, so "not configured" is not a failure.
func (h Health) OK() bool {
	sourceOK := h.Source == "ok" || h.Source == "not configured"
	return h.Stash == "ok" && sourceOK && h.Archive == "ok"
}

// Service answers status queries.
type Service struct {
	stash    *stash.Client
	repo     *source.Repository
	archive  mediastore.Client
	bucket   string
	registry *runs.Registry
	logger   *zap.Logger
}

// NewService creates a new status service. repo may be nil when the source
// database is not configured.
func NewService(client *stash.Client, repo *source.Repository, archive mediastore.Client, bucket string,
	registry *runs.Registry, logger *zap.Logger) *Service {
	return &Service{
		stash:    client,
		repo:     repo,
		archive:  archive,
		bucket:   bucket,
		registry: registry,
		logger:   logger,
	}
}

// Check probes every dependency.
func (s *Service) Check(ctx context.Context) Health {
	health := Health{Stash: "ok", Source: "ok", Archive: "ok"}

	if _, err := s.stash.Version(ctx); err != nil {
		health.Stash = err.Error()
	}

	if s.repo == nil {
		health.Source = "not configured"
	} else if err := s.repo.Ping(ctx); err != nil {
		health.Source = err.Error()
	}

	exists, err := s.archive.BucketExists(ctx, s.bucket)
	if err != nil {
		health.Archive = err.Error()
	} else if !exists {
		health.Archive = "bucket missing"
	}

	return health
}

// Runs returns all runs, newest first.
func (s *Service) Runs() []runs.Run {
	return s.registry.List()
}

// Run returns a single run by ID.
func (s *Service) Run(id string) (runs.Run, bool) {
	return s.registry.Get(id)
}
