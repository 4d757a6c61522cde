package scene

import (
	"context"
	"errors"
	"fmt"
	"path"
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

// Service attaches platform metadata to the Stash scenes backing an
// account's video media.
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

// NewService creates a new scene service.
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

// SyncAccount processes every downloaded video of the account through the
// worker pool. It returns the run ID and the number of soft failures.
func (s *Service) SyncAccount(ctx context.Context, account *source.Account, performerID, studioID string) (string, int, error) {
	media, err := s.repo.MediaForAccount(ctx, account.ID, source.MediaKindVideo)
	if err != nil {
		return "", 0, err
	}

	runID := s.registry.Begin("scenes", account.Username, len(media))
	pool := worker.Pool{
		Size:      s.pool.Workers,
		QueueSize: s.pool.QueueSize,
		OnProgress: func(done, total int) {
			s.registry.Progress(runID, done, total)
		},
	}

	failures, runErr := worker.Run(ctx, pool, media, func(ctx context.Context, m source.Media) error {
		return s.processMedia(ctx, account, &m, performerID, studioID)
	})

	s.registry.Finish(runID, describeFailures(media, failures), runErr)
	if runErr != nil {
		return runID, len(failures), runErr
	}

	s.logger.Info("Scene sync finished",
		zap.String("account", account.Username),
		zap.Int("media", len(media)),
		zap.Int("failed", len(failures)),
	)
	return runID, len(failures), nil
}

// processMedia links the scene backing one media row, if Stash has one.
func (s *Service) processMedia(ctx context.Context, account *source.Account, media *source.Media, performerID, studioID string) error {
	if s.verify {
		if err := mediastore.Verify(ctx, s.archive, s.bucket, media.LocalPath, media.Size); err != nil {
			return err
		}
	}

	found, err := s.findScene(ctx, media)
	if err != nil {
		return err
	}

	return s.link(ctx, found, account, media, performerID, studioID)
}

// findScene resolves the Stash scene for a media row: code first, then file
// fingerprints (hash, falling back to basename).
func (s *Service) findScene(ctx context.Context, media *source.Media) (*stash.Scene, error) {
	code := strconv.FormatInt(media.ID, 10)

	found, err := s.stash.FindSceneByCode(ctx, code)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, stash.ErrNotFound) {
		return nil, err
	}

	basename := path.Base(media.LocalPath)
	found, err = s.stash.FindSceneByFragment(ctx, media.Hash, basename)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, stash.ErrNotFound) {
		return nil, err
	}
	return nil, fmt.Errorf("no scene for %q, not scanned yet", basename)
}

// link stamps the scene with the media's metadata. Only missing pieces are
// written; user edits in Stash are preserved.
func (s *Service) link(ctx context.Context, scene *stash.Scene, account *source.Account, media *source.Media, performerID, studioID string) error {
	title, details, url, tagIDs, err := s.describeMedia(ctx, account, media)
	if err != nil {
		return err
	}

	input := scene.UpdateInput()
	changed := false

	code := strconv.FormatInt(media.ID, 10)
	if scene.Code != code {
		input.Code = &code
		changed = true
	}
	if scene.Title == "" && title != "" {
		input.Title = &title
		changed = true
	}
	if scene.Details == "" && details != "" {
		input.Details = &details
		changed = true
	}
	if scene.Date == "" {
		date := media.CreatedAt.Format("2006-01-02")
		input.Date = &date
		changed = true
	}
	if url != "" && !hasURL(scene.URLs, url) {
		urls := append(*input.URLs, url)
		input.URLs = &urls
		changed = true
	}
	if scene.Studio == nil && studioID != "" {
		input.StudioID = &studioID
		changed = true
	}
	if performerID != "" && !hasID(scene.PerformerIDs(), performerID) {
		performerIDs := append(*input.PerformerIDs, performerID)
		input.PerformerIDs = &performerIDs
		changed = true
	}
	if missing := missingIDs(scene.TagIDs(), tagIDs); len(missing) > 0 {
		merged := append(*input.TagIDs, missing...)
		input.TagIDs = &merged
		changed = true
	}

	if !changed {
		return nil
	}
	if _, err := s.stash.UpdateScene(ctx, input); err != nil {
		return fmt.Errorf("updating scene %s for media %d: %w", scene.ID, media.ID, err)
	}
	return nil
}

// describeMedia derives title, details, canonical URL and tag IDs from the
// post or message the media belongs to.
func (s *Service) describeMedia(ctx context.Context, account *source.Account, media *source.Media) (title, details, url string, tagIDs []string, err error) {
	post, err := s.repo.PostForMedia(ctx, media)
	if err == nil {
		title = headline(post.Content)
		details = post.Content
		url = s.platform.PostURL(post.ID)
		tagIDs, err = s.tagging.EnsureTags(ctx, post.Hashtags)
		if err != nil {
			return "", "", "", nil, err
		}
		return title, details, url, tagIDs, nil
	}
	if !errors.Is(err, source.ErrNotFound) {
		return "", "", "", nil, err
	}

	message, err := s.repo.MessageForMedia(ctx, media)
	if err == nil {
		title = headline(message.Content)
		details = message.Content
		return title, details, "", nil, nil
	}
	if !errors.Is(err, source.ErrNotFound) {
		return "", "", "", nil, err
	}

	// Orphan media: fall back to the file name
	return strings.TrimSuffix(path.Base(media.LocalPath), path.Ext(media.LocalPath)), "", "", nil, nil
}

// headline returns the first line of content, truncated to 80 runes.
func headline(content string) string {
	line := strings.TrimSpace(content)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	runes := []rune(line)
	if len(runes) > 80 {
		return strings.TrimSpace(string(runes[:80]))
	}
	return line
}

func hasURL(urls []string, url string) bool {
	want := stash.NormalizeURL(url)
	for _, u := range urls {
		if stash.NormalizeURL(u) == want {
			return true
		}
	}
	return false
}

func hasID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func missingIDs(existing, wanted []string) []string {
	var missing []string
	for _, id := range wanted {
		if !hasID(existing, id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// describeFailures renders worker failures with the media ID they concern.
func describeFailures(media []source.Media, failures []worker.ItemError) []string {
	out := make([]string, 0, len(failures))
	for _, f := range failures {
		if f.Index >= 0 && f.Index < len(media) {
			out = append(out, fmt.Sprintf("media %d: %v", media[f.Index].ID, f.Err))
		} else {
			out = append(out, f.Err.Error())
		}
	}
	return out
}
