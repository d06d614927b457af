package reading

import (
	"context"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// Navigate moves the reader through a story and reports the new state.
// With autoplay the result carries the utterance for the new current word.
func (s *Service) Navigate(ctx context.Context, input NavigateInput) (*NavigateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.LoadDocument(ctx, input.StoryID)
	if err != nil {
		return nil, err
	}
	if doc.Len() == 0 {
		return nil, domain.NewValidationError("story_id", "story has no words")
	}
	if input.Position.Word >= doc.Len() {
		return nil, domain.NewValidationError("position.word", "out of range")
	}

	pos, ok := doc.Move(input.Position, input.Action, input.Target)
	if !ok {
		return nil, domain.NewValidationError("target", "out of range")
	}

	result := &NavigateResult{
		Position:  pos,
		Word:      doc.Words[pos.Word],
		Progress:  doc.Progress(pos),
		Completed: doc.Completed(pos),
	}

	autoPlay := s.settings.AutoPlay
	if input.AutoPlay != nil {
		autoPlay = *input.AutoPlay
	}
	if autoPlay && result.Word.Clean != "" {
		result.Utterance = &domain.Utterance{
			Target: domain.SpeechTargetWord,
			Text:   result.Word.Clean,
			Rate:   s.settings.ClampRate(input.Rate),
		}
	}

	if result.Completed {
		s.log.DebugContext(ctx, "story completed", "story_id", input.StoryID)
	}

	return result, nil
}
