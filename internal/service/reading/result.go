package reading

import (
	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// StoryList is one page of the story catalog.
type StoryList struct {
	Stories []domain.Story
	Total   int
}

// NavigateResult is the reader state after a navigation step.
type NavigateResult struct {
	Position  domain.Position
	Word      Word
	Progress  float64
	Completed bool

	// Utterance is set when autoplay is on and the word has speakable text.
	Utterance *domain.Utterance
}

// SegmentResult is the segmentation of ad-hoc text.
type SegmentResult struct {
	Words           []string
	Sentences       []string
	WordSentenceMap []int
	Aligned         bool
}

// SyllabifiedWord is one entry of a syllabify batch.
type SyllabifiedWord struct {
	Word      string
	Clean     string
	Syllables string
	Parts     []string
	Count     int
}
