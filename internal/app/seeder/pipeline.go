package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/storyreader-backend/internal/app/seeder/catalog"
	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Source   string
	Parsed   int
	Upserted int
	Skipped  int
	Duration time.Duration
}

// Pipeline parses the story catalog and writes it in one transaction.
type Pipeline struct {
	log  *slog.Logger
	repo StoryBulkRepo
	tx   TxRunner
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo StoryBulkRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		tx:   tx,
		cfg:  cfg,
	}
}

// Run parses the catalog and upserts every story. With DryRun set nothing is
// written and every parsed story counts as skipped. A failed batch rolls the
// whole run back.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	stories, source, err := p.parse()
	if err != nil {
		return Result{}, err
	}

	result := Result{Source: source, Parsed: len(stories)}
	p.log.Info("catalog parsed", slog.String("source", source), slog.Int("stories", len(stories)))

	if p.cfg.DryRun {
		result.Skipped = len(stories)
		result.Duration = time.Since(start)
		p.log.Info("dry run, nothing written", slog.Int("skipped", result.Skipped))
		return result, nil
	}

	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := batchProcess(stories, p.cfg.BatchSize, func(batch []domain.Story) (int, error) {
			return p.repo.Upsert(ctx, batch)
		})
		result.Upserted = n
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("upsert stories: %w", err)
	}

	result.Duration = time.Since(start)
	p.log.Info("catalog seeded",
		slog.Int("upserted", result.Upserted),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

func (p *Pipeline) parse() ([]domain.Story, string, error) {
	if p.cfg.StoriesPath == "" {
		stories, err := catalog.Bundled()
		return stories, "bundled", err
	}
	stories, err := catalog.Load(p.cfg.StoriesPath)
	return stories, p.cfg.StoriesPath, err
}

// batchProcess calls fn for consecutive chunks of at most batchSize items and
// sums the results. It stops at the first error.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
