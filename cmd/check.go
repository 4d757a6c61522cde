package cmd

import (
	"context"
	"fmt"

	"stash-bridge/core/config"
	"stash-bridge/core/logger"
	"stash-bridge/core/mediastore"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd probes every configured dependency.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify connectivity to Stash, the source database and the archive",
	RunE:  runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	failed := false

	// Stash
	client, err := stash.NewClient(cfg.Stash, l)
	if err != nil {
		return err
	}
	if version, err := client.Version(ctx); err != nil {
		l.Error("Stash unreachable", zap.String("url", cfg.Stash.URL), zap.Error(err))
		failed = true
	} else {
		l.Info("Stash reachable", zap.String("version", version.Version))
	}

	// Source database
	if db, err := source.Connect(cfg.Source); err != nil {
		l.Error("Source database unreachable", zap.Error(err))
		failed = true
	} else {
		repo := source.NewRepository(db)
		if accounts, err := repo.Accounts(ctx); err != nil {
			l.Error("Source database query failed", zap.Error(err))
			failed = true
		} else {
			l.Info("Source database reachable", zap.Int("accounts", len(accounts)))
		}
	}

	// Media archive
	archive, err := mediastore.NewClient(cfg.Archive)
	if err != nil {
		return err
	}
	if exists, err := archive.BucketExists(ctx, cfg.Archive.Bucket); err != nil {
		l.Error("Archive unreachable", zap.Error(err))
		failed = true
	} else if !exists {
		l.Error("Archive bucket missing", zap.String("bucket", cfg.Archive.Bucket))
		failed = true
	} else {
		l.Info("Archive reachable", zap.String("bucket", cfg.Archive.Bucket))
	}

	if failed {
		return fmt.Errorf("one or more dependencies are unreachable")
	}
	return nil
}
