package reading

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// ListStoriesInput holds the parameters for listing stories.
type ListStoriesInput struct {
	Difficulty *string
	Query      *string
	Limit      int // 0 selects DefaultStoryLimit
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListStoriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Difficulty != nil && !domain.Difficulty(*i.Difficulty).IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate, advanced or poetry"})
	}
	if i.Query != nil && len(*i.Query) > MaxQueryLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	if i.Limit < 0 || i.Limit > MaxStoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NavigateInput holds the parameters for moving through a story.
type NavigateInput struct {
	StoryID  uuid.UUID
	Position domain.Position
	Action   domain.NavigationAction
	Target   int   // word index for NavigateJump
	AutoPlay *bool // nil selects the configured default
	Rate     float64
}

// Validate checks all fields and collects all errors.
func (i NavigateInput) Validate() error {
	var errs []domain.FieldError

	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "invalid navigation action"})
	}
	if i.Position.Word < 0 {
		errs = append(errs, domain.FieldError{Field: "position.word", Message: "must be >= 0"})
	}
	if i.Action == domain.NavigateJump && i.Target < 0 {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be >= 0"})
	}
	if i.Rate < 0 {
		errs = append(errs, domain.FieldError{Field: "rate", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UtteranceInput holds the parameters for building an utterance.
type UtteranceInput struct {
	StoryID  uuid.UUID
	Position domain.Position
	Target   domain.SpeechTarget
	Syllable int // syllable index for SpeechTargetSyllable
	Rate     float64
}

// Validate checks all fields and collects all errors.
func (i UtteranceInput) Validate() error {
	var errs []domain.FieldError

	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be word, sentence or syllable"})
	}
	if i.Position.Word < 0 {
		errs = append(errs, domain.FieldError{Field: "position.word", Message: "must be >= 0"})
	}
	if i.Syllable < 0 {
		errs = append(errs, domain.FieldError{Field: "syllable", Message: "must be >= 0"})
	}
	if i.Rate < 0 {
		errs = append(errs, domain.FieldError{Field: "rate", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SegmentInput holds ad-hoc text to segment.
type SegmentInput struct {
	Text string
}

// Validate checks the text against the configured maximum length. Empty text
// is valid and segments to an empty result.
func (i SegmentInput) Validate(maxLength int) error {
	if len(i.Text) > maxLength {
		return domain.NewValidationError("text", "too long")
	}
	return nil
}

// SyllabifyInput holds a batch of words to syllabify.
type SyllabifyInput struct {
	Words []string
}

// Validate checks the batch against the configured maximum size.
func (i SyllabifyInput) Validate(maxWords int) error {
	if len(i.Words) == 0 {
		return domain.NewValidationError("words", "required")
	}
	if len(i.Words) > maxWords {
		return domain.NewValidationError("words", "too many words")
	}
	return nil
}
