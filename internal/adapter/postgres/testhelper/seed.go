package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// StoryOption customizes a seeded story before insertion.
type StoryOption func(*domain.Story)

// WithDifficulty sets the story difficulty.
func WithDifficulty(d domain.Difficulty) StoryOption {
	return func(s *domain.Story) { s.Difficulty = d }
}

// WithTitle sets the story title.
func WithTitle(title string) StoryOption {
	return func(s *domain.Story) { s.Title = title }
}

// WithContent sets the story content.
func WithContent(content string) StoryOption {
	return func(s *domain.Story) { s.Content = content }
}

// SeedStory inserts a beginner story with a unique slug and returns it.
func SeedStory(t *testing.T, pool *pgxpool.Pool, opts ...StoryOption) domain.Story {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	story := domain.Story{
		ID:                 uuid.New(),
		Slug:               "story-" + suffix,
		Title:              "Test Story " + suffix,
		Difficulty:         domain.DifficultyBeginner,
		Description:        "seeded for tests",
		WordCount:          6,
		ReadingTimeMinutes: 1,
		Content:            "The hare ran. The tortoise won!",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(&story)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO stories (id, slug, title, difficulty, description, word_count, reading_time_minutes, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		story.ID, story.Slug, story.Title, string(story.Difficulty), story.Description,
		story.WordCount, story.ReadingTimeMinutes, story.Content, story.CreatedAt, story.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStory insert: %v", err)
	}

	return story
}
