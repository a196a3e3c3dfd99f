package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dersesut/equipimport/internal/server"
	"github.com/dersesut/equipimport/internal/store"
	"github.com/dersesut/equipimport/pkg/ingest"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the import API",
		Long: `serve listens on HTTP_ADDR. When DATABASE_URL is set, imports are
persisted to PostgreSQL and /api/stats is available.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sheetShape, _ := ingest.ParseShape(cfg.Import.Shape)
	opts := server.Options{
		MaxUploadBytes: cfg.Import.MaxUploadBytes(),
		Shape:          sheetShape,
	}

	var st server.Store
	if cfg.Database.Enabled() {
		db, err := openStore(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		st = db
	} else {
		logger.Warn("DATABASE_URL not set; imports will not be persisted")
	}

	return server.New(opts, st, logger).Run(ctx, cfg.Server.Addr)
}

func openStore(ctx context.Context, url string) (*store.Store, error) {
	db, err := store.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
