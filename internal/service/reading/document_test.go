package reading

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

const hareText = "The hare ran. The tortoise won!"

func buildDoc(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := BuildDocument(context.Background(), content, 2)
	require.NoError(t, err)
	return doc
}

func pos(word, sentence int) domain.Position {
	return domain.Position{Word: word, Sentence: sentence}
}

// ---------------------------------------------------------------------------
// BuildDocument
// ---------------------------------------------------------------------------

func TestBuildDocument(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, hareText)

	require.Equal(t, 6, doc.Len())
	assert.Equal(t, []string{"The hare ran", "The tortoise won"}, doc.Sentences)
	assert.True(t, doc.Aligned)

	want := []struct {
		text, clean, syllables string
		sentence               int
	}{
		{"The", "the", "the", 0},
		{"hare", "hare", "hare", 0},
		{"ran.", "ran", "ran", 0},
		{"The", "the", "the", 1},
		{"tortoise", "tortoise", "tor-toise", 1},
		{"won!", "won", "won", 1},
	}
	for i, w := range want {
		got := doc.Words[i]
		assert.Equal(t, i, got.Index)
		assert.Equal(t, w.text, got.Text)
		assert.Equal(t, w.clean, got.Clean)
		assert.Equal(t, w.syllables, got.Syllables)
		assert.Equal(t, w.sentence, got.SentenceIndex)
	}
	assert.Equal(t, []string{"tor", "toise"}, doc.Words[4].Parts)
}

func TestBuildDocument_WorkerCountDoesNotChangeResult(t *testing.T) {
	t.Parallel()

	text := `Once there lived in a forest a hare and a tortoise. The hare was very proud of his speed.
He made fun of the tortoise for his slow speed!`

	base, err := BuildDocument(context.Background(), text, 1)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 3, 7, 100} {
		doc, err := BuildDocument(context.Background(), text, workers)
		require.NoError(t, err)
		assert.Equal(t, base.Words, doc.Words, "workers=%d", workers)
	}
}

func TestBuildDocument_Empty(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, "   ")
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, doc.Sentences)
	assert.Equal(t, float64(0), doc.Progress(pos(0, 0)))
	assert.False(t, doc.Completed(pos(0, 0)))
}

func TestBuildDocument_Misaligned(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, "Hi . there")
	assert.False(t, doc.Aligned)
	require.Equal(t, 3, doc.Len())
	assert.Equal(t, 0, doc.Words[2].SentenceIndex)
	assert.Equal(t, "", doc.Words[1].Clean)
	assert.Empty(t, doc.Words[1].Parts)
}

func TestBuildDocument_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildDocument(ctx, hareText, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// ---------------------------------------------------------------------------
// Progress / Completed
// ---------------------------------------------------------------------------

func TestDocument_Progress(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, hareText)

	assert.InDelta(t, 100.0/6, doc.Progress(pos(0, 0)), 1e-9)
	assert.InDelta(t, 50.0, doc.Progress(pos(2, 0)), 1e-9)
	assert.InDelta(t, 100.0, doc.Progress(pos(5, 1)), 1e-9)

	assert.False(t, doc.Completed(pos(4, 1)))
	assert.True(t, doc.Completed(pos(5, 1)))
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

func TestDocument_Move(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, hareText)

	tests := []struct {
		name   string
		from   domain.Position
		action domain.NavigationAction
		target int
		want   domain.Position
		ok     bool
	}{
		{"next", pos(0, 0), domain.NavigateNext, 0, pos(1, 0), true},
		{"next crosses sentence", pos(2, 0), domain.NavigateNext, 0, pos(3, 1), true},
		{"next stays on last word", pos(5, 1), domain.NavigateNext, 0, pos(5, 1), true},
		{"prev", pos(3, 1), domain.NavigatePrev, 0, pos(2, 0), true},
		{"prev stays on first word", pos(0, 0), domain.NavigatePrev, 0, pos(0, 0), true},
		{"jump", pos(0, 0), domain.NavigateJump, 4, pos(4, 1), true},
		{"jump out of range", pos(0, 0), domain.NavigateJump, 6, domain.Position{}, false},
		{"jump negative", pos(0, 0), domain.NavigateJump, -1, domain.Position{}, false},
		{"next sentence", pos(1, 0), domain.NavigateNextSentence, 0, pos(3, 1), true},
		{"next sentence on last sentence", pos(4, 1), domain.NavigateNextSentence, 0, pos(4, 1), true},
		{"prev sentence", pos(4, 1), domain.NavigatePrevSentence, 0, pos(0, 0), true},
		{"prev sentence on first sentence", pos(2, 0), domain.NavigatePrevSentence, 0, pos(0, 0), true},
		{"restart", pos(5, 1), domain.NavigateRestart, 0, pos(0, 0), true},
		{"unknown action", pos(2, 0), domain.NavigationAction("fly"), 0, pos(2, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := doc.Move(tt.from, tt.action, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_NavigationRecomputesSentence(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, hareText)

	// A stale sentence on the incoming position is ignored.
	got := doc.Next(pos(3, 0))
	assert.Equal(t, pos(4, 1), got)
}

func TestDocument_UnmappedTailFallsBackToFirstSentence(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, "Hi . there")

	assert.Equal(t, pos(2, 0), doc.Next(pos(1, 1)))
	assert.Equal(t, pos(1, 1), doc.NextSentence(pos(2, 0)))
}
