package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowboardhq/flowboard/internal/api"
	"github.com/flowboardhq/flowboard/pkg/boards"
	"github.com/flowboardhq/flowboard/pkg/config"
	"github.com/flowboardhq/flowboard/pkg/jobs"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the FlowBoard HTTP API",
		Long: `Run the FlowBoard HTTP API.

The server exposes board shape listing, the seed operation, and async
clip jobs. Boards persist to MongoDB and jobs to Redis when configured;
with no connection settings both fall back to in-memory stores, which
suits local development.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")

	return cmd
}

// runServe wires stores from config and serves until the context ends.
func (c *CLI) runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	boardStore, err := newBoardStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := boardStore.Close(context.Background()); err != nil {
			c.Logger.Error("close board store", "err", err)
		}
	}()

	jobStore, err := newJobStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := jobStore.Close(); err != nil {
			c.Logger.Error("close job store", "err", err)
		}
	}()

	jobSvc := jobs.NewService(jobStore, newGenerator(cfg), c.Logger)

	server := api.NewServer(api.Config{
		Addr:       cfg.Server.Addr,
		CORSOrigin: cfg.Server.CORSOrigin,
	}, boardStore, jobSvc, c.Logger)

	return server.ListenAndServe(ctx)
}

// newGenerator selects the clip generator from config.
func newGenerator(cfg config.Config) jobs.Generator {
	if cfg.Clips.Endpoint == "" {
		return jobs.StubGenerator{BaseURL: cfg.Clips.BaseURL}
	}
	return &jobs.HTTPGenerator{Endpoint: cfg.Clips.Endpoint}
}

// newBoardStore selects the board store from config.
func newBoardStore(ctx context.Context, cfg config.Config) (boards.Store, error) {
	if cfg.Mongo.URI == "" {
		return boards.NewMemoryStore(), nil
	}
	store, err := boards.NewMongoStore(ctx, boards.MongoConfig{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return store, nil
}

// newJobStore selects the job store from config.
func newJobStore(ctx context.Context, cfg config.Config) (jobs.Store, error) {
	if cfg.Redis.Addr == "" {
		return jobs.NewMemoryStore(), nil
	}
	store, err := jobs.NewRedisStore(ctx, jobs.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return store, nil
}
