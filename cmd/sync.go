package cmd

import (
	"context"
	"fmt"

	"stash-bridge/core/config"
	"stash-bridge/core/logger"
	"stash-bridge/core/mediastore"
	"stash-bridge/core/platform"
	"stash-bridge/core/runs"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"
	"stash-bridge/feature/gallery"
	"stash-bridge/feature/performer"
	"stash-bridge/feature/scene"
	"stash-bridge/feature/studio"
	"stash-bridge/feature/tagging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncAccount   string
	skipScenes    bool
	skipGalleries bool
)

// syncCmd performs a one-shot sync of platform metadata into Stash.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync platform metadata into Stash",
	Long: `Sync platform accounts into Stash performers and studios, then attach
metadata to the scenes and galleries backing their downloaded media.

Examples:
  # Sync every account in the metadata database
  sync

  # Sync a single account
  sync --account janedoe

  # Performers and studios only
  sync --account janedoe --skip-scenes --skip-galleries`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncAccount, "account", "", "Sync only this account username")
	syncCmd.Flags().BoolVar(&skipScenes, "skip-scenes", false, "Skip scene processing")
	syncCmd.Flags().BoolVar(&skipGalleries, "skip-galleries", false, "Skip gallery processing")

	RootCmd.AddCommand(syncCmd)
}

// syncServices bundles everything a sync run needs.
type syncServices struct {
	repo       *source.Repository
	performers *performer.Service
	studios    *studio.Service
	scenes     *scene.Service
	galleries  *gallery.Service
	logger     *zap.Logger
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svcs, err := buildSyncServices(ctx, cfg, l)
	if err != nil {
		return err
	}

	accounts, err := resolveAccounts(ctx, svcs.repo)
	if err != nil {
		return err
	}

	l.Info("Starting sync", zap.Int("accounts", len(accounts)))
	for i := range accounts {
		if err := syncOne(ctx, svcs, &accounts[i]); err != nil {
			return err
		}
	}
	l.Info("Sync finished")
	return nil
}

func buildSyncServices(ctx context.Context, cfg *config.Config, l *zap.Logger) (*syncServices, error) {
	// Stash client, with a version probe so misconfiguration fails fast
	client, err := stash.NewClient(cfg.Stash, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create stash client: %w", err)
	}
	version, err := client.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach stash: %w", err)
	}
	l.Info("Connected to stash", zap.String("version", version.Version))

	// Source database
	db, err := source.Connect(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to source database: %w", err)
	}
	repo := source.NewRepository(db)

	// Media archive
	archive, err := mediastore.NewClient(cfg.Archive)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	p := platform.Platform{Name: cfg.Sync.Platform}
	registry := runs.NewRegistry()
	tags := tagging.NewService(client, l)

	return &syncServices{
		repo:       repo,
		performers: performer.NewService(client, repo, p, l),
		studios:    studio.NewService(client, p, l),
		scenes: scene.NewService(client, repo, archive, cfg.Archive.Bucket, cfg.Sync.VerifyArchive,
			tags, p, cfg.Sync.Pool, registry, l),
		galleries: gallery.NewService(client, repo, archive, cfg.Archive.Bucket, cfg.Sync.VerifyArchive,
			tags, p, cfg.Sync.Pool, registry, l),
		logger: l,
	}, nil
}

func resolveAccounts(ctx context.Context, repo *source.Repository) ([]source.Account, error) {
	if syncAccount != "" {
		account, err := repo.AccountByUsername(ctx, syncAccount)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", syncAccount, err)
		}
		return []source.Account{*account}, nil
	}
	return repo.Accounts(ctx)
}

func syncOne(ctx context.Context, svcs *syncServices, account *source.Account) error {
	l := svcs.logger.With(zap.String("account", account.Username))
	l.Info("Syncing account")

	p, err := svcs.performers.SyncAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("performer sync for %q: %w", account.Username, err)
	}

	st, err := svcs.studios.EnsureAccountStudio(ctx, account)
	if err != nil {
		return fmt.Errorf("studio sync for %q: %w", account.Username, err)
	}

	if !skipScenes {
		runID, failed, err := svcs.scenes.SyncAccount(ctx, account, p.ID, st.ID)
		if err != nil {
			return fmt.Errorf("scene sync for %q: %w", account.Username, err)
		}
		if failed > 0 {
			l.Warn("Scene sync had soft failures", zap.String("run_id", runID), zap.Int("failed", failed))
		}
	}

	if !skipGalleries {
		runID, failed, err := svcs.galleries.SyncAccount(ctx, account, p.ID, st.ID)
		if err != nil {
			return fmt.Errorf("gallery sync for %q: %w", account.Username, err)
		}
		if failed > 0 {
			l.Warn("Gallery sync had soft failures", zap.String("run_id", runID), zap.Int("failed", failed))
		}
	}

	return nil
}
