// Command seeder loads the story catalog into the database. By default it
// writes the catalog bundled with the binary; a YAML file can be given
// instead. It is intended to be run after migrations, not as part of the
// main server.
//
// Flags:
//
//	--stories        path to a catalog YAML file (default: bundled catalog)
//	--dry-run        parse and validate the catalog without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/storyreader-backend/internal/app"
	"github.com/heartmarshall/storyreader-backend/internal/app/seeder"
	"github.com/heartmarshall/storyreader-backend/internal/config"
)

func main() {
	storiesFlag := flag.String("stories", "", "path to a catalog YAML file (default: bundled catalog)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate the catalog without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *storiesFlag != "" {
		seederCfg.StoriesPath = *storiesFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, story.New(pool), postgres.NewTxManager(pool), *seederCfg)
	res, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.String("source", res.Source),
		slog.Int("parsed", res.Parsed),
		slog.Int("upserted", res.Upserted),
		slog.Int("skipped", res.Skipped),
	)
}
