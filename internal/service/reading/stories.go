package reading

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
	"github.com/heartmarshall/storyreader-backend/pkg/ctxutil"
)

// ListStories returns one page of stories, easiest first.
func (s *Service) ListStories(ctx context.Context, input ListStoriesInput) (*StoryList, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.StoryFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultStoryLimit
	}
	if input.Difficulty != nil {
		d := domain.Difficulty(*input.Difficulty)
		filter.Difficulty = &d
	}
	if input.Query != nil {
		if q := domain.NormalizeText(*input.Query); q != "" {
			filter.Query = &q
		}
	}

	stories, err := s.stories.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	total, err := s.stories.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count stories: %w", err)
	}

	return &StoryList{Stories: stories, Total: total}, nil
}

// GetStory returns a single story by ID.
func (s *Service) GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	if storyID == uuid.Nil {
		return nil, domain.NewValidationError("story_id", "required")
	}

	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}

	return story, nil
}

// LoadDocument fetches a story and prepares it for reading.
func (s *Service) LoadDocument(ctx context.Context, storyID uuid.UUID) (*Document, error) {
	story, err := s.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}

	doc, err := BuildDocument(ctx, story.Content, s.settings.Workers)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}
	doc.StoryID = story.ID
	doc.Title = story.Title

	if !doc.Aligned {
		ctxutil.Logger(ctx, s.log).WarnContext(ctx, "story word enumerations disagree",
			"story_id", story.ID,
			"words", len(doc.Words),
			"mapped_words", len(doc.seg.WordSentenceMap),
		)
	}

	return doc, nil
}
