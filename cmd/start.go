package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bet-board/core/config"
	"bet-board/core/database"
	"bet-board/core/loader"
	"bet-board/core/logger"
	"bet-board/core/middleware/auth"
	"bet-board/core/middleware/rayid"
	"bet-board/core/storage"
	"bet-board/feature/bets"
	"bet-board/feature/bets/game"
	"bet-board/feature/bets/store"
	"bet-board/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bet-board/docs/swagger"
)

// @title Bet Board API
// @version 1.0
// @description API for recording numeric lottery-style bets per game variant.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bet board server",
	Long:  `Starts the HTTP server, prepares the bet tables and loads all enabled features.`,
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

		// 3. Game Registry
		registry := game.DefaultRegistry()
		defaultGame := game.ID(cfg.Server.DefaultGame)
		if _, err := registry.Resolve(defaultGame); err != nil {
			logg.Fatal("Invalid default game", zap.String("game", cfg.Server.DefaultGame))
		}

		// 4. Connect to Database and prepare the bet tables
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		if err := store.New(db).Migrate(cmd.Context(), registry); err != nil {
			logg.Fatal("Failed to prepare bet tables", zap.Error(err))
		}

		// 5. Initialize Storage (optional, snapshots only)
		var storeClient storage.Client
		if cfg.Storage.Enabled {
			if client, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Optional storage connection failed, snapshots disabled", zap.Error(err))
			} else {
				storeClient = client
				logg.Info("Connected to snapshot storage", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(bets.NewFeature(db, registry, defaultGame, logg))
		mgr.Register(snapshot.NewFeature(storeClient, cfg.Storage.Bucket, db, registry, defaultGame, logg))

		// Middleware Registration
		// RayID must come first so everything downstream is traceable.
		app.Use(rayid.New())

		// Request logging with Zap + RayID
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

		// Static client page
		if cfg.Server.StaticDir != "" {
			if _, err := os.Stat(cfg.Server.StaticDir); err == nil {
				app.Static("/", cfg.Server.StaticDir)
			}
		}

		// Auth protects the API group
		app.Use("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
