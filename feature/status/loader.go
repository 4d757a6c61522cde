package status

import (
	"stash-bridge/core/mediastore"
	"stash-bridge/core/runs"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new status feature.
func NewFeature(client *stash.Client, repo *source.Repository, archive mediastore.Client, bucket string,
	registry *runs.Registry, logger *zap.Logger) *Feature {
	svc := NewService(client, repo, archive, bucket, registry, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
