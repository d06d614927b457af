package reading

import (
	"context"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// Utterance builds the text and rate for the speech engine at a position:
// the cleaned current word, its sentence, or one of its syllables.
func (s *Service) Utterance(ctx context.Context, input UtteranceInput) (*domain.Utterance, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.LoadDocument(ctx, input.StoryID)
	if err != nil {
		return nil, err
	}
	if input.Position.Word >= doc.Len() {
		return nil, domain.NewValidationError("position.word", "out of range")
	}

	word := doc.Words[input.Position.Word]

	var text string
	switch input.Target {
	case domain.SpeechTargetWord:
		text = word.Clean
	case domain.SpeechTargetSentence:
		if sentence := word.SentenceIndex; sentence < len(doc.Sentences) {
			text = doc.Sentences[sentence]
		}
	case domain.SpeechTargetSyllable:
		if input.Syllable >= len(word.Parts) {
			return nil, domain.NewValidationError("syllable", "out of range")
		}
		text = word.Parts[input.Syllable]
	}

	if text == "" {
		return nil, domain.NewValidationError("position.word", "nothing to speak")
	}

	return &domain.Utterance{
		Target: input.Target,
		Text:   text,
		Rate:   s.settings.ClampRate(input.Rate),
	}, nil
}
