package cmd

import (
	"log"

	"bet-board/core/config"
	"bet-board/core/database"
	"bet-board/core/logger"
	"bet-board/core/storage"
	"bet-board/feature/bets/game"
	"bet-board/feature/bets/store"
	"bet-board/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportGame string

// exportCmd exports a game's bet table to the snapshot bucket without
// starting the server.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a game's bets to object storage",
	Long:  `Writes the current bet table of one game as a JSON snapshot object.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		registry := game.DefaultRegistry()
		gameID := game.ID(exportGame)
		if _, err := registry.Resolve(gameID); err != nil {
			return err
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		svc := snapshot.NewService(client, cfg.Storage.Bucket, registry, store.New(db), logg)
		object, count, err := svc.Export(cmd.Context(), gameID)
		if err != nil {
			return err
		}

		logg.Info("Export finished",
			zap.String("object", object),
			zap.Int("bets", count))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportGame, "game", string(game.Day), "game to export (day, night, open)")
	RootCmd.AddCommand(exportCmd)
}
