// Command ingest is the Dugout Grid dataset loader CLI.
//
// Usage:
//
//	dugout-ingest load --dir ./data
//	dugout-ingest load --dir ./data --truncate
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dugoutgrid/dugout-data/internal/config"
	"github.com/dugoutgrid/dugout-data/internal/db"
	"github.com/dugoutgrid/dugout-data/internal/ingest"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "dugout-ingest",
		Short: "Dugout Grid dataset loader",
	}

	root.AddCommand(loadCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCmd() *cobra.Command {
	var dir string
	var truncate bool
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load dataset CSVs into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.DatasetDir
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			start := time.Now()
			result := ingest.Load(ctx, pool.Pool, dir, truncate, logger)
			logger.Info("dataset load finished",
				"duration", time.Since(start).Round(time.Second),
				"summary", result.Summary())
			for _, e := range result.Errors {
				logger.Error("load error", "error", e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory containing dataset CSVs (default $DATASET_DIR)")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Truncate each table before loading")
	return cmd
}
