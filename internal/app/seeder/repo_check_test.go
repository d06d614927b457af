package seeder_test

import (
	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/storyreader-backend/internal/app/seeder"
)

// Compile-time checks against the production adapters.
var (
	_ seeder.StoryBulkRepo = (*story.Repo)(nil)
	_ seeder.TxRunner      = (*postgres.TxManager)(nil)
)
