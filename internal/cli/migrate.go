package cli

import (
	"context"

	"github.com/casarosier/cms-migrate/internal/assets"
	"github.com/casarosier/cms-migrate/internal/cms"
	"github.com/casarosier/cms-migrate/internal/config"
	"github.com/casarosier/cms-migrate/internal/legacy"
	"github.com/casarosier/cms-migrate/internal/migrate"
	"github.com/spf13/cobra"
)

type MigrateOptions struct {
	DryRun    bool
	ChunkSize int
	PageSize  int
}

func NewMigrateCmd() *cobra.Command {
	opts := &MigrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run the full migration from the legacy KV store",
		RunE: func(c *cobra.Command, args []string) error {
			return runMigrate(c.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Read and map records without uploading or writing")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", legacy.DefaultChunkSize, "Keys per multi-get chunk")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", legacy.DefaultPageSize, "Keys per history scan page")

	return cmd
}

func runMigrate(ctx context.Context, opts *MigrateOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireLegacy(); err != nil {
		return err
	}

	legacyStore, err := legacy.Open(cfg.LegacyConnString, cfg.LegacyTable)
	if err != nil {
		return err
	}
	defer legacyStore.Close()

	content, err := cms.Connect(ctx, cfg.MongoConnString, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer content.Close(context.Background())

	var uploader migrate.ImageUploader
	if !opts.DryRun {
		up, err := assets.New(cfg.S3AccountID, cfg.S3AccessKeyID, cfg.S3SecretAccessKey, cfg.S3BucketName)
		if err != nil {
			return err
		}
		uploader = up
	}

	orch := migrate.New(legacyStore, content, uploader, migrate.Options{
		DryRun:    opts.DryRun,
		PageSize:  opts.PageSize,
		ChunkSize: opts.ChunkSize,
	})
	return orch.Run(ctx)
}
