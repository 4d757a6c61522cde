package studio

import (
	"context"
	"errors"
	"fmt"

	"stash-bridge/core/platform"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"go.uber.org/zap"
)

// Service links the platform and its accounts to Stash studios.
type Service struct {
	stash    *stash.Client
	platform platform.Platform
	logger   *zap.Logger
}

// NewService creates a new studio service.
func NewService(client *stash.Client, p platform.Platform, logger *zap.Logger) *Service {
	return &Service{
		stash:    client,
		platform: p,
		logger:   logger,
	}
}

// EnsurePlatformStudio returns the parent studio for the platform,
// creating it if missing.
func (s *Service) EnsurePlatformStudio(ctx context.Context) (*stash.Studio, error) {
	name := s.platform.Title()

	found, err := s.stash.FindStudioByName(ctx, name)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, stash.ErrNotFound) {
		return nil, fmt.Errorf("searching platform studio: %w", err)
	}

	created, err := s.stash.CreateStudio(ctx, stash.StudioCreateInput{
		Name: name,
		URL:  s.platform.SiteURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating platform studio: %w", err)
	}
	return created, nil
}

// EnsureAccountStudio returns the child studio for an account, creating or
// re-parenting one as needed.
func (s *Service) EnsureAccountStudio(ctx context.Context, account *source.Account) (*stash.Studio, error) {
	parent, err := s.EnsurePlatformStudio(ctx)
	if err != nil {
		return nil, err
	}

	displayName := account.DisplayName
	if displayName == "" {
		displayName = account.Username
	}
	childName := fmt.Sprintf("%s (%s)", displayName, s.platform.Title())
	profileURL := s.platform.ProfileURL(account.Username)

	found, err := s.findAccountStudio(ctx, childName, profileURL)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return s.adopt(ctx, found, parent)
	}

	created, err := s.stash.CreateStudio(ctx, stash.StudioCreateInput{
		Name:     childName,
		URL:      profileURL,
		ParentID: parent.ID,
		Aliases:  []string{account.Username},
	})
	if err != nil {
		return nil, fmt.Errorf("creating studio for account %q: %w", account.Username, err)
	}
	return created, nil
}

// findAccountStudio resolves an existing child studio by exact name, then
// by profile URL so renamed accounts still match.
func (s *Service) findAccountStudio(ctx context.Context, name, profileURL string) (*stash.Studio, error) {
	found, err := s.stash.FindStudioByName(ctx, name)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, stash.ErrNotFound) {
		return nil, fmt.Errorf("searching studio by name %q: %w", name, err)
	}

	byURL, err := s.stash.FindStudiosByURL(ctx, stash.NormalizeURL(profileURL))
	if err != nil {
		return nil, fmt.Errorf("searching studio by url: %w", err)
	}
	want := stash.NormalizeURL(profileURL)
	for i := range byURL {
		if stash.NormalizeURL(byURL[i].URL) == want {
			return &byURL[i], nil
		}
	}
	return nil, nil
}

// adopt ensures a matched studio sits under the platform parent.
func (s *Service) adopt(ctx context.Context, found *stash.Studio, parent *stash.Studio) (*stash.Studio, error) {
	if found.ParentStudio != nil && found.ParentStudio.ID == parent.ID {
		return found, nil
	}

	parentID := parent.ID
	input := found.UpdateInput()
	input.ParentID = &parentID
	updated, err := s.stash.UpdateStudio(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("re-parenting studio %s: %w", found.ID, err)
	}
	s.logger.Info("Re-parented studio under platform",
		zap.String("studio_id", updated.ID),
		zap.String("parent_id", parentID),
	)
	return updated, nil
}
