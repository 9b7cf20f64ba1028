package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillduel/skillduel/skillduel"
	"github.com/skillduel/skillduel/skillduel/archive"
	"github.com/skillduel/skillduel/skillduel/database"
	"github.com/skillduel/skillduel/skillduel/database/repositories"
	"github.com/skillduel/skillduel/skillduel/logger"
	"github.com/skillduel/skillduel/skillduel/session"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	slog.Info("Starting SkillDuel client core",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := skillduel.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	// Reinstall at the configured level now that the config is in.
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Configuration loaded successfully")

	sessions := session.NewStaticProvider(
		os.Getenv("SKILLDUEL_USER_ID"),
		os.Getenv("SKILLDUEL_USERNAME"),
		os.Getenv("SKILLDUEL_TOKEN"),
	)

	app := skillduel.New(*cfg, sessions)

	if cfg.DB.Host != "" {
		slog.Info("Initializing snapshot database...")
		dbStartTime := time.Now()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		dbConfig := database.DBConfig{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Database,
			PoolSize: cfg.DB.PoolSize,
		}

		db, err := database.New(ctx, dbConfig)
		if err != nil {
			cancel()
			slog.Error("Database connection failed",
				slog.String("error", err.Error()),
				slog.Duration("attempted_for", time.Since(dbStartTime)))
			os.Exit(-1)
		}

		if err := db.InitializeSchema(ctx); err != nil {
			cancel()
			slog.Error("Failed to initialize snapshot schema",
				slog.String("error", err.Error()))
			os.Exit(-1)
		}
		cancel()

		app.DB = db
		app.Snapshots = repositories.NewPlanSnapshotRepository(db.BunDB())
		slog.Info("Snapshot database connected",
			slog.String("database", cfg.DB.Database),
			slog.Duration("took", time.Since(dbStartTime)))
	}

	if cfg.Archive.Enabled {
		archiveService, err := archive.NewService(
			cfg.Archive.Key,
			cfg.Archive.Secret,
			cfg.Archive.Region,
			cfg.Archive.Bucket,
			cfg.Archive.Root,
		)
		if err != nil {
			slog.Error("Failed to initialize plan archive", slog.Any("error", err))
			os.Exit(-1)
		}
		app.Archive = archiveService
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.Start(ctx)

	slog.Info("Client core is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down...")
	cancel()
	app.Shutdown(10 * time.Second)
}
