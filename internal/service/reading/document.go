package reading

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
	"github.com/heartmarshall/storyreader-backend/internal/text/segment"
	"github.com/heartmarshall/storyreader-backend/internal/text/syllable"
)

// Word is one whitespace token of a story with its reading aids.
type Word struct {
	Index         int
	Text          string
	Clean         string
	Syllables     string
	Parts         []string
	SentenceIndex int
}

// Document is a story prepared for guided reading.
type Document struct {
	StoryID   uuid.UUID
	Title     string
	Words     []Word
	Sentences []string

	// Aligned is false when the per-sentence word enumeration disagrees with
	// the whole-text word split; sentence lookups may then drift.
	Aligned bool

	seg segment.Result
}

// BuildDocument segments content and syllabifies every word. Syllabification
// is spread over at most workers goroutines.
func BuildDocument(ctx context.Context, content string, workers int) (*Document, error) {
	seg := segment.Segment(content)

	words := make([]Word, len(seg.Words))
	for i, text := range seg.Words {
		words[i] = Word{
			Index:         i,
			Text:          text,
			Clean:         segment.CleanWord(text),
			SentenceIndex: seg.SentenceOf(i),
		}
	}

	if workers < 1 {
		workers = 1
	}
	chunk := (len(words) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(words); start += chunk {
		end := min(start+chunk, len(words))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				words[i].Syllables = syllable.Syllabify(words[i].Clean)
				words[i].Parts = syllable.Split(words[i].Clean)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("syllabify words: %w", err)
	}

	return &Document{
		Words:     words,
		Sentences: seg.Sentences,
		Aligned:   seg.Aligned(),
		seg:       seg,
	}, nil
}

// Len returns the number of words.
func (d *Document) Len() int {
	return len(d.Words)
}

// SentenceOf returns the sentence index for a word index (0 when unmapped).
func (d *Document) SentenceOf(word int) int {
	return d.seg.SentenceOf(word)
}

// Progress returns the reading progress at pos as a percentage:
// (word+1)/len(words)*100. An empty document has no progress.
func (d *Document) Progress(pos domain.Position) float64 {
	if len(d.Words) == 0 {
		return 0
	}
	return float64(pos.Word+1) / float64(len(d.Words)) * 100
}

// Completed reports whether pos is on the last word.
func (d *Document) Completed(pos domain.Position) bool {
	return len(d.Words) > 0 && pos.Word >= len(d.Words)-1
}
