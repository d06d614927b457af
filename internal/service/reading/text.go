package reading

import (
	"context"

	"github.com/heartmarshall/storyreader-backend/internal/text/segment"
	"github.com/heartmarshall/storyreader-backend/internal/text/syllable"
)

// Segment splits ad-hoc text into words and sentences.
func (s *Service) Segment(_ context.Context, input SegmentInput) (*SegmentResult, error) {
	if err := input.Validate(s.settings.MaxTextLength); err != nil {
		return nil, err
	}

	seg := segment.Segment(input.Text)
	return &SegmentResult{
		Words:           seg.Words,
		Sentences:       seg.Sentences,
		WordSentenceMap: seg.WordSentenceMap,
		Aligned:         seg.Aligned(),
	}, nil
}

// Syllabify cleans and syllabifies a batch of words, keeping input order.
func (s *Service) Syllabify(_ context.Context, input SyllabifyInput) ([]SyllabifiedWord, error) {
	if err := input.Validate(s.settings.MaxBatchWords); err != nil {
		return nil, err
	}

	out := make([]SyllabifiedWord, len(input.Words))
	for i, w := range input.Words {
		clean := segment.CleanWord(w)
		parts := syllable.Split(clean)
		out[i] = SyllabifiedWord{
			Word:      w,
			Clean:     clean,
			Syllables: syllable.Syllabify(clean),
			Parts:     parts,
			Count:     len(parts),
		}
	}
	return out, nil
}
