package gallery

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"stash-bridge/core/mediastore"
	"stash-bridge/core/platform"
	"stash-bridge/core/runs"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"
	"stash-bridge/core/worker"
	"stash-bridge/feature/tagging"

	"go.uber.org/zap"
)

// Service maps an account's image posts onto Stash galleries.
type Service struct {
	stash    *stash.Client
	repo     *source.Repository
	archive  mediastore.Client
	bucket   string
	verify   bool
	tagging  *tagging.Service
	platform platform.Platform
	pool     worker.Config
	registry *runs.Registry
	logger   *zap.Logger
}

// NewService creates a new gallery service.
func NewService(client *stash.Client, repo *source.Repository, archive mediastore.Client, bucket string, verify bool,
	tags *tagging.Service, p platform.Platform, pool worker.Config, registry *runs.Registry, logger *zap.Logger) *Service {
	return &Service{
		stash:    client,
		repo:     repo,
		archive:  archive,
		bucket:   bucket,
		verify:   verify,
		tagging:  tags,
		platform: p,
		pool:     pool,
		registry: registry,
		logger:   logger,
	}
}

// SyncAccount processes every image post of the account through the worker
// pool. It returns the run ID and the number of soft failures.
func (s *Service) SyncAccount(ctx context.Context, account *source.Account, performerID, studioID string) (string, int, error) {
	posts, err := s.repo.ImagePostsForAccount(ctx, account.ID)
	if err != nil {
		return "", 0, err
	}

	runID := s.registry.Begin("galleries", account.Username, len(posts))
	pool := worker.Pool{
		Size:      s.pool.Workers,
		QueueSize: s.pool.QueueSize,
		OnProgress: func(done, total int) {
			s.registry.Progress(runID, done, total)
		},
	}

	failures, runErr := worker.Run(ctx, pool, posts, func(ctx context.Context, post source.Post) error {
		return s.processPost(ctx, account, &post, performerID, studioID)
	})

	s.registry.Finish(runID, describeFailures(posts, failures), runErr)
	if runErr != nil {
		return runID, len(failures), runErr
	}

	s.logger.Info("Gallery sync finished",
		zap.String("account", account.Username),
		zap.Int("posts", len(posts)),
		zap.Int("failed", len(failures)),
	)
	return runID, len(failures), nil
}

// processPost finds or creates the gallery for one image post and attaches
// whatever scanned images Stash already has for it.
func (s *Service) processPost(ctx context.Context, account *source.Account, post *source.Post, performerID, studioID string) error {
	if s.verify {
		for i := range post.Media {
			if err := mediastore.Verify(ctx, s.archive, s.bucket, post.Media[i].LocalPath, post.Media[i].Size); err != nil {
				return err
			}
		}
	}

	key := matchKey{
		code:  strconv.FormatInt(post.ID, 10),
		title: headline(post.Content, account.Username),
		date:  post.CreatedAt.Format("2006-01-02"),
		url:   s.platform.PostURL(post.ID),
	}

	tagIDs, err := s.tagging.EnsureTags(ctx, post.Hashtags)
	if err != nil {
		return err
	}

	target, err := s.resolveGallery(ctx, key, performerID, studioID, tagIDs)
	if err != nil {
		return err
	}

	return s.attachImages(ctx, target, post)
}

// resolveGallery returns the gallery for the match key, creating or
// updating as needed.
func (s *Service) resolveGallery(ctx context.Context, key matchKey, performerID, studioID string, tagIDs []string) (*stash.Gallery, error) {
	candidates, err := s.findCandidates(ctx, key)
	if err != nil {
		return nil, err
	}

	if found := match(key, candidates); found != nil {
		return s.update(ctx, found, key, performerID, studioID, tagIDs)
	}

	input := stash.GalleryCreateInput{
		Title:  key.title,
		Code:   key.code,
		Date:   key.date,
		URLs:   []string{key.url},
		TagIDs: tagIDs,
	}
	if studioID != "" {
		input.StudioID = studioID
	}
	if performerID != "" {
		input.PerformerIDs = []string{performerID}
	}

	created, err := s.stash.CreateGallery(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("creating gallery for post %s: %w", key.code, err)
	}
	return created, nil
}

// findCandidates gathers galleries that could correspond to the post.
func (s *Service) findCandidates(ctx context.Context, key matchKey) ([]stash.Gallery, error) {
	seen := make(map[string]struct{})
	var candidates []stash.Gallery

	add := func(galleries []stash.Gallery) {
		for _, g := range galleries {
			if _, dup := seen[g.ID]; dup {
				continue
			}
			seen[g.ID] = struct{}{}
			candidates = append(candidates, g)
		}
	}

	byCode, err := s.stash.FindGalleryByCode(ctx, key.code)
	if err == nil {
		add([]stash.Gallery{*byCode})
	} else if !errors.Is(err, stash.ErrNotFound) {
		return nil, fmt.Errorf("searching gallery by code %s: %w", key.code, err)
	}

	if key.title != "" {
		byTitle, err := s.stash.FindGalleriesByTitle(ctx, key.title)
		if err != nil {
			return nil, fmt.Errorf("searching galleries by title: %w", err)
		}
		add(byTitle)
	}

	byURL, _, err := s.stash.FindGalleries(ctx, stash.FindFilter{PerPage: -1}, &stash.GalleryFilter{
		URL: stash.IncludesCriterion(stash.NormalizeURL(key.url)),
	})
	if err != nil {
		return nil, fmt.Errorf("searching galleries by url: %w", err)
	}
	add(byURL)

	return candidates, nil
}

// update stamps a matched gallery with the missing pieces of metadata.
func (s *Service) update(ctx context.Context, found *stash.Gallery, key matchKey, performerID, studioID string, tagIDs []string) (*stash.Gallery, error) {
	input := found.UpdateInput()
	changed := false

	if found.Code != key.code {
		code := key.code
		input.Code = &code
		changed = true
	}
	if found.Date == "" && key.date != "" {
		date := key.date
		input.Date = &date
		changed = true
	}
	if key.url != "" && !found.HasURL(key.url) {
		urls := append(*input.URLs, key.url)
		input.URLs = &urls
		changed = true
	}
	if found.Studio == nil && studioID != "" {
		input.StudioID = &studioID
		changed = true
	}
	if performerID != "" && !hasPerformer(found.Performers, performerID) {
		performerIDs := append(*input.PerformerIDs, performerID)
		input.PerformerIDs = &performerIDs
		changed = true
	}
	if missing := missingTagIDs(found.Tags, tagIDs); len(missing) > 0 {
		merged := append(*input.TagIDs, missing...)
		input.TagIDs = &merged
		changed = true
	}

	if !changed {
		return found, nil
	}
	updated, err := s.stash.UpdateGallery(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("updating gallery %s for post %s: %w", found.ID, key.code, err)
	}
	return updated, nil
}

// attachImages links the post's scanned images to the gallery by basename.
func (s *Service) attachImages(ctx context.Context, gallery *stash.Gallery, post *source.Post) error {
	var pending []string

	for i := range post.Media {
		basename := path.Base(post.Media[i].LocalPath)
		pattern := regexp.QuoteMeta(basename) + "$"
		images, err := s.stash.FindImagesByPathRegex(ctx, pattern)
		if err != nil {
			return fmt.Errorf("searching image %q: %w", basename, err)
		}
		for j := range images {
			if imageInGallery(&images[j], gallery.ID) {
				continue
			}
			for _, file := range images[j].Files {
				if file.Basename == basename {
					pending = append(pending, images[j].ID)
					break
				}
			}
		}
	}

	if len(pending) == 0 {
		return nil
	}
	if err := s.stash.AddGalleryImages(ctx, gallery.ID, pending); err != nil {
		return fmt.Errorf("attaching %d images to gallery %s: %w", len(pending), gallery.ID, err)
	}
	return nil
}

func imageInGallery(image *stash.Image, galleryID string) bool {
	for _, g := range image.Galleries {
		if g.ID == galleryID {
			return true
		}
	}
	return false
}

func hasPerformer(performers []stash.Performer, id string) bool {
	for _, p := range performers {
		if p.ID == id {
			return true
		}
	}
	return false
}

func missingTagIDs(existing []stash.Tag, wanted []string) []string {
	have := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		have[t.ID] = struct{}{}
	}
	var missing []string
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// headline derives the gallery title from the post content, falling back to
// a dated label for caption-less posts.
func headline(content, username string) string {
	line := strings.TrimSpace(content)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	runes := []rune(line)
	if len(runes) > 80 {
		line = strings.TrimSpace(string(runes[:80]))
	}
	if line == "" {
		return fmt.Sprintf("%s gallery", username)
	}
	return line
}

// describeFailures renders worker failures with the post ID they concern.
func describeFailures(posts []source.Post, failures []worker.ItemError) []string {
	out := make([]string, 0, len(failures))
	for _, f := range failures {
		if f.Index >= 0 && f.Index < len(posts) {
			out = append(out, fmt.Sprintf("post %d: %v", posts[f.Index].ID, f.Err))
		} else {
			out = append(out, f.Err.Error())
		}
	}
	return out
}
