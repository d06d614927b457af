// Package seeder loads the story catalog into the database.
package seeder

import (
	"context"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// StoryBulkRepo is the write contract consumed by the pipeline.
// Implemented by story.Repo.
type StoryBulkRepo interface {
	// Upsert inserts stories or updates them in place, keyed by slug.
	Upsert(ctx context.Context, stories []domain.Story) (int, error)
}

// TxRunner runs fn inside a single database transaction.
// Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
