// Package segment splits story text into words and sentences and maps each
// word to its owning sentence. Pure functions: text in, value structs out.
package segment

import (
	"regexp"
	"strings"
)

// sentenceTerminators matches a run of sentence-ending punctuation.
// A run like "?!" or "..." is a single delimiter.
var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// Result holds the segmentation of a single text.
type Result struct {
	Words     []string // whitespace tokens, verbatim
	Sentences []string // trimmed, non-empty, in text order

	// WordSentenceMap is built by re-tokenizing every sentence, so its
	// length is the sum of per-sentence token counts and may differ from
	// len(Words). Use SentenceOf for lookups.
	WordSentenceMap []int
}

// Segment splits text into words, sentences and the word→sentence map.
// It never fails: empty and whitespace-only input yield three empty (non-nil)
// slices. Punctuation-only input keeps its verbatim whitespace tokens as words
// but has no sentences, so the map is empty and the result is not aligned.
func Segment(text string) Result {
	sentences := splitSentences(text)
	words := strings.Fields(text)

	wordSentenceMap := make([]int, 0, len(words))
	for i, sentence := range sentences {
		for range strings.Fields(sentence) {
			wordSentenceMap = append(wordSentenceMap, i)
		}
	}

	return Result{
		Words:           words,
		Sentences:       sentences,
		WordSentenceMap: wordSentenceMap,
	}
}

func splitSentences(text string) []string {
	spans := sentenceTerminators.Split(text, -1)
	sentences := make([]string, 0, len(spans))
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if span == "" {
			continue
		}
		sentences = append(sentences, span)
	}
	return sentences
}

// SentenceOf returns the sentence index for a word index. Indexes outside
// the map (including words past the end of a short map) resolve to 0.
func (r Result) SentenceOf(wordIndex int) int {
	if wordIndex < 0 || wordIndex >= len(r.WordSentenceMap) {
		return 0
	}
	return r.WordSentenceMap[wordIndex]
}

// Aligned reports whether the sentence-rebuilt word enumeration has the same
// length as the whole-text word split. Punctuation between words (for example
// "Wait...what?" or a stray " . ") makes the two disagree.
func (r Result) Aligned() bool {
	return len(r.WordSentenceMap) == len(r.Words)
}

// FirstWordOf returns the smallest word index mapped to the given sentence,
// or -1 if no word maps to it.
func (r Result) FirstWordOf(sentence int) int {
	for i, s := range r.WordSentenceMap {
		if s == sentence {
			return i
		}
		if s > sentence {
			break
		}
	}
	return -1
}

// CleanWord strips every character outside [A-Za-z0-9] and lowercases the rest.
// It is idempotent: CleanWord(CleanWord(w)) == CleanWord(w).
func CleanWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}
