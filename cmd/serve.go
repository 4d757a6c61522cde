package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stash-bridge/core/config"
	"stash-bridge/core/loader"
	"stash-bridge/core/logger"
	"stash-bridge/core/mediastore"
	"stash-bridge/core/middleware/auth"
	"stash-bridge/core/middleware/rayid"
	"stash-bridge/core/runs"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"

	"stash-bridge/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stash-bridge/docs/swagger"
)

// @title Stash Bridge API
// @version 1.0
// @description Status API for the Stash bridge.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the status server",
	Long:  `Starts the HTTP status server exposing health and sync-run endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.Enabled {
			logg.Warn("Status server disabled by configuration, nothing to do")
			return
		}

		// 3. Stash client (connectivity verified via health endpoint)
		client, err := stash.NewClient(cfg.Stash, logg)
		if err != nil {
			logg.Fatal("Failed to create stash client", zap.Error(err))
		}

		// 4. Connect to Source Database (Optional)
		var repo *source.Repository
		if db, err := source.Connect(cfg.Source); err != nil {
			logg.Warn("Optional source database connection failed", zap.Error(err))
		} else {
			repo = source.NewRepository(db)
			logg.Info("Connected to source metadata database")
		}

		// 5. Media Archive
		archive, err := mediastore.NewClient(cfg.Archive)
		if err != nil {
			logg.Fatal("Failed to create archive client", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Feature Loader
		registry := runs.NewRegistry()
		mgr := loader.NewManager(logg)
		mgr.Register(status.NewFeature(client, repo, archive, cfg.Archive.Bucket, registry, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
