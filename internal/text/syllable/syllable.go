// Package syllable splits a clean word into syllables for pronunciation
// practice. Pure functions over static tables; safe for concurrent use.
//
// Syllabify tries an ordered chain of strategies. Each one either renders the
// word or defers to the next:
//
//  1. exception table lookup
//  2. suffix forming its own syllable ("run-ning", "in-ven-tion")
//  3. consonant + "le" ending ("can-dle")
//  4. silent terminal "e" or "ed" ("tor-toise", "chal-lenged")
//  5. the vowel-nucleus classifier
//
// Removing every Separator from the output always yields the input.
package syllable

import (
	"strings"
	"unicode/utf8"
)

// strategy renders a word or reports ok=false to defer.
type strategy func(word string) (string, bool)

var strategies []strategy

func init() {
	// Assigned in init because the strategies recurse into Syllabify.
	strategies = []strategy{
		fromExceptions,
		splitSuffix,
		splitConsonantLE,
		dropSilentE,
		dropSilentED,
		classify,
	}
}

// Syllabify returns word with syllable boundaries marked by Separator.
// word is expected to be a clean word (see segment.CleanWord). Words shorter
// than two letters are returned unchanged.
func Syllabify(word string) string {
	if utf8.RuneCountInString(word) < 2 {
		return word
	}
	for _, s := range strategies {
		if out, ok := s(word); ok {
			return out
		}
	}
	return word
}

// Split returns the syllables of word in order. An empty word has none.
func Split(word string) []string {
	if word == "" {
		return []string{}
	}
	return strings.Split(Syllabify(word), Separator)
}

// Count returns the number of syllables in word.
func Count(word string) int {
	return len(Split(word))
}

func fromExceptions(word string) (string, bool) {
	out, ok := exceptions[word]
	return out, ok
}

func splitSuffix(word string) (string, bool) {
	for _, r := range suffixes {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		base := word[:len(word)-len(r.suffix)]
		if !hasVowel(base) {
			continue
		}

		last, size := utf8.DecodeLastRuneInString(base)
		if r.after != "" && !strings.ContainsRune(r.after, last) {
			continue
		}
		if r.keepOnset && onsetPairs[string(last)+r.suffix[:1]] {
			continue
		}

		doubled := endsDoubled(base)
		if r.doubledOnly && !doubled {
			continue
		}

		// "runn|ing" renders as "run-ning": the doubled letter opens the suffix.
		first, _ := utf8.DecodeRuneInString(r.suffix)
		if doubled && isVowel(first) && !keepDoubled[last] {
			return Syllabify(base[:len(base)-size]) + Separator + string(last) + r.render, true
		}
		return Syllabify(base) + Separator + r.render, true
	}
	return "", false
}

func splitConsonantLE(word string) (string, bool) {
	if !strings.HasSuffix(word, "le") {
		return "", false
	}
	stem := word[:len(word)-2]
	c, size := utf8.DecodeLastRuneInString(stem)
	if c == utf8.RuneError || isVowel(c) {
		return "", false
	}

	// "tick|le": the ck digraph stays in the first syllable.
	if strings.HasSuffix(stem, "ck") {
		return Syllabify(stem) + Separator + "le", true
	}

	head := stem[:len(stem)-size]
	if !hasVowel(head) {
		return "", false
	}
	return Syllabify(head) + Separator + word[len(head):], true
}

// dropSilentE keeps a terminal "e" after a consonant attached to the last
// syllable. Vowel + "e" endings ("ee", "oe", "ye", "ie", "ue") are left to
// the classifier, where the pair contracts or stays in one nucleus.
func dropSilentE(word string) (string, bool) {
	if !strings.HasSuffix(word, "e") {
		return "", false
	}
	base := word[:len(word)-1]
	c, _ := utf8.DecodeLastRuneInString(base)
	if c == utf8.RuneError || isVowel(c) || !hasVowel(base) {
		return "", false
	}
	return Syllabify(base) + "e", true
}

// dropSilentED handles "-ed" after a consonant other than t or d, where it
// adds no syllable ("jumped", "challenged").
func dropSilentED(word string) (string, bool) {
	if !strings.HasSuffix(word, "ed") {
		return "", false
	}
	base := word[:len(word)-2]
	c, _ := utf8.DecodeLastRuneInString(base)
	if c == utf8.RuneError || isVowel(c) || c == 't' || c == 'd' || !hasVowel(base) {
		return "", false
	}
	return Syllabify(base) + "ed", true
}

// letter kinds produced by the classifier scan.
const (
	consonant = iota
	nucleus
	absorbed // second letter of a vowel digraph
)

// classify scans the word once, contracting vowel digraphs into nuclei and
// placing one boundary in every consonant run between two nuclei.
func classify(word string) (string, bool) {
	letters := []rune(word)
	n := len(letters)

	kind := make([]int, n)
	for i := 0; i < n; i++ {
		if !isVowel(letters[i]) {
			continue
		}
		kind[i] = nucleus
		if i+1 < n && vowelDigraphs[string(letters[i:i+2])] {
			kind[i+1] = absorbed
			i++
		}
	}

	boundary := make([]bool, n)
	prevEnd := -1
	for i := 0; i < n; i++ {
		if kind[i] != nucleus {
			continue
		}
		if prevEnd >= 0 {
			if at := boundaryIn(letters, prevEnd+1, i); at > 0 {
				boundary[at] = true
			}
		}
		prevEnd = i
		if i+1 < n && kind[i+1] == absorbed {
			prevEnd = i + 1
		}
	}

	var b strings.Builder
	b.Grow(len(word) + n/2)
	for i, r := range letters {
		if boundary[i] && i > 0 {
			b.WriteString(Separator)
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// boundaryIn returns the index of the letter that starts the next syllable
// for the consonant run letters[start:next], or -1 when the run is empty.
func boundaryIn(letters []rune, start, next int) int {
	run := string(letters[start:next])
	switch k := next - start; {
	case k == 0:
		return -1
	case k == 1:
		return start
	case k == 2:
		if onsetPairs[run] {
			return start
		}
		return start + 1
	default:
		if onsetTriples[string(letters[next-3:next])] {
			return next - 3
		}
		for _, seq := range neverSplit {
			if strings.Contains(run, seq) {
				return start
			}
		}
		return start + 1
	}
}

func isVowel(r rune) bool {
	return vowels[r]
}

func hasVowel(s string) bool {
	for _, r := range s {
		if isVowel(r) {
			return true
		}
	}
	return false
}

// endsDoubled reports whether s ends in the same consonant twice.
func endsDoubled(s string) bool {
	last, size := utf8.DecodeLastRuneInString(s)
	if last == utf8.RuneError || isVowel(last) {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:len(s)-size])
	return prev == last
}
