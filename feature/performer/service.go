package performer

import (
	"context"
	"fmt"

	"stash-bridge/core/platform"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"go.uber.org/zap"
)

// Service links platform accounts to Stash performers.
type Service struct {
	stash    *stash.Client
	repo     *source.Repository
	platform platform.Platform
	logger   *zap.Logger
}

// NewService creates a new performer service.
func NewService(client *stash.Client, repo *source.Repository, p platform.Platform, logger *zap.Logger) *Service {
	return &Service{
		stash:    client,
		repo:     repo,
		platform: p,
		logger:   logger,
	}
}

// SyncAccount returns the Stash performer for an account, creating or
// updating one as needed.
func (s *Service) SyncAccount(ctx context.Context, account *source.Account) (*stash.Performer, error) {
	previous, err := s.repo.PreviousUsernames(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	cand := candidate{
		displayName: account.DisplayName,
		usernames:   append([]string{account.Username}, previous...),
		profileURL:  s.platform.ProfileURL(account.Username),
	}

	existing, err := s.findCandidates(ctx, cand)
	if err != nil {
		return nil, err
	}

	if found := match(cand, existing); found != nil {
		return s.update(ctx, found, account, cand)
	}
	return s.create(ctx, account, cand)
}

// findCandidates gathers performers that could belong to the account:
// exact name/alias hits for every known username plus URL hits for the
// profile link.
func (s *Service) findCandidates(ctx context.Context, cand candidate) ([]stash.Performer, error) {
	seen := make(map[string]struct{})
	var candidates []stash.Performer

	add := func(performers []stash.Performer) {
		for _, p := range performers {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			candidates = append(candidates, p)
		}
	}

	names := append([]string{cand.displayName}, cand.usernames...)
	for _, name := range names {
		if name == "" {
			continue
		}
		byName, err := s.stash.FindPerformersByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("searching performers by name %q: %w", name, err)
		}
		add(byName)
	}

	byURL, err := s.stash.FindPerformersByURL(ctx, stash.NormalizeURL(cand.profileURL))
	if err != nil {
		return nil, fmt.Errorf("searching performers by url: %w", err)
	}
	add(byURL)

	return candidates, nil
}

func (s *Service) create(ctx context.Context, account *source.Account, cand candidate) (*stash.Performer, error) {
	name := account.DisplayName
	if name == "" {
		name = account.Username
	}

	input := stash.PerformerCreateInput{
		Name:           name,
		Disambiguation: account.Username,
		URLs:           []string{cand.profileURL},
		Aliases:        mergeAliases(name, nil, cand.usernames),
		Details:        account.About,
		Country:        account.Location,
	}
	if account.AvatarURL != "" {
		input.Image = account.AvatarURL
	}

	created, err := s.stash.CreatePerformer(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("creating performer for account %q: %w", account.Username, err)
	}
	return created, nil
}

// update adds the profile URL and any unknown usernames to a matched
// performer. Fields the user may have curated (name, details, image) are
// left alone.
func (s *Service) update(ctx context.Context, found *stash.Performer, account *source.Account, cand candidate) (*stash.Performer, error) {
	// appendAliases never drops entries, so a longer list means new aliases
	mergedAliases := appendAliases(found.Name, found.Aliases, cand.usernames)

	changed := len(mergedAliases) != len(found.Aliases)
	if !found.HasURL(cand.profileURL) {
		changed = true
	}
	if !changed {
		return found, nil
	}

	input := found.UpdateInput()
	input.Aliases = &mergedAliases
	if !found.HasURL(cand.profileURL) {
		urls := append(*input.URLs, cand.profileURL)
		input.URLs = &urls
	}

	updated, err := s.stash.UpdatePerformer(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("updating performer %s for account %q: %w", found.ID, account.Username, err)
	}
	s.logger.Info("Linked account to existing performer",
		zap.String("account", account.Username),
		zap.String("performer_id", updated.ID),
	)
	return updated, nil
}
