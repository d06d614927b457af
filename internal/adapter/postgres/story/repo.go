// Package story implements the story catalog repository using PostgreSQL.
// Queries are built with squirrel against the stories table.
package story

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storyreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

const table = "stories"

var columns = []string{
	"id", "slug", "title", "difficulty", "description",
	"word_count", "reading_time_minutes", "content", "created_at", "updated_at",
}

// difficultyRank mirrors domain.Difficulty.Rank for ORDER BY.
const difficultyRank = `CASE difficulty
    WHEN 'beginner' THEN 1
    WHEN 'intermediate' THEN 2
    WHEN 'advanced' THEN 3
    WHEN 'poetry' THEN 4
    ELSE 5 END`

const upsertSuffix = `ON CONFLICT (slug) DO UPDATE SET
    title = EXCLUDED.title,
    difficulty = EXCLUDED.difficulty,
    description = EXCLUDED.description,
    word_count = EXCLUDED.word_count,
    reading_time_minutes = EXCLUDED.reading_time_minutes,
    content = EXCLUDED.content,
    updated_at = now()`

// likeEscaper escapes LIKE metacharacters in user-supplied search text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new story repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a story by primary key.
// Returns domain.ErrNotFound if the story does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id.String())
}

// GetBySlug returns a story by its unique slug.
// Returns domain.ErrNotFound if the story does not exist.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Story, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, slug)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key string) (*domain.Story, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get story query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	s, err := scanStory(row)
	if err != nil {
		return nil, postgres.MapError(err, "story", key)
	}
	return &s, nil
}

// List returns stories matching the filter, ordered from easiest to hardest
// difficulty and then by title. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.StoryFilter) ([]domain.Story, error) {
	q := applyFilter(postgres.Builder().Select(columns...).From(table), filter).
		OrderBy(difficultyRank, "title ASC", "id ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list stories query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	stories := []domain.Story{}
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	return stories, nil
}

// Count returns the number of stories matching the filter, ignoring Limit and Offset.
func (r *Repo) Count(ctx context.Context, filter domain.StoryFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("count(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count stories query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stories: %w", err)
	}
	return count, nil
}

func applyFilter(q squirrel.SelectBuilder, filter domain.StoryFilter) squirrel.SelectBuilder {
	if filter.Difficulty != nil {
		q = q.Where(squirrel.Eq{"difficulty": string(*filter.Difficulty)})
	}
	if filter.Query != nil && *filter.Query != "" {
		q = q.Where(squirrel.ILike{"title": "%" + likeEscaper.Replace(*filter.Query) + "%"})
	}
	return q
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts stories or updates the existing rows with the same slug.
// IDs are assigned by the database for new rows; existing IDs are preserved.
// Returns the number of rows written.
func (r *Repo) Upsert(ctx context.Context, stories []domain.Story) (int, error) {
	if len(stories) == 0 {
		return 0, nil
	}

	q := postgres.Builder().
		Insert(table).
		Columns("slug", "title", "difficulty", "description", "word_count", "reading_time_minutes", "content")
	for _, s := range stories {
		q = q.Values(s.Slug, s.Title, string(s.Difficulty), s.Description, s.WordCount, s.ReadingTimeMinutes, s.Content)
	}

	sql, args, err := q.Suffix(upsertSuffix).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert stories query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "story", "upsert")
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanStory(row pgx.Row) (domain.Story, error) {
	var (
		s          domain.Story
		difficulty string
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := row.Scan(
		&s.ID, &s.Slug, &s.Title, &difficulty, &s.Description,
		&s.WordCount, &s.ReadingTimeMinutes, &s.Content, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Story{}, err
	}

	s.Difficulty = domain.Difficulty(difficulty)
	s.CreatedAt = createdAt.UTC()
	s.UpdatedAt = updatedAt.UTC()
	return s, nil
}
