package reading

import (
	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// at returns the position of word i with its mapped sentence.
func (d *Document) at(word int) domain.Position {
	return domain.Position{Word: word, Sentence: d.SentenceOf(word)}
}

// Start returns the first position of the document.
func (d *Document) Start() domain.Position {
	return d.at(0)
}

// Next moves one word forward; it stays on the last word.
func (d *Document) Next(pos domain.Position) domain.Position {
	if pos.Word+1 >= len(d.Words) {
		return d.at(pos.Word)
	}
	return d.at(pos.Word + 1)
}

// Prev moves one word back; it stays on the first word.
func (d *Document) Prev(pos domain.Position) domain.Position {
	if pos.Word <= 0 {
		return d.at(0)
	}
	return d.at(pos.Word - 1)
}

// Jump moves to word i. ok is false when i is outside the document.
func (d *Document) Jump(i int) (pos domain.Position, ok bool) {
	if i < 0 || i >= len(d.Words) {
		return domain.Position{}, false
	}
	return d.at(i), true
}

// NextSentence moves to the first word of the following sentence. It stays
// put on the last sentence or when no word maps to the following one.
func (d *Document) NextSentence(pos domain.Position) domain.Position {
	target := d.SentenceOf(pos.Word) + 1
	if target >= len(d.Sentences) {
		return d.at(pos.Word)
	}
	first := d.seg.FirstWordOf(target)
	if first < 0 || first >= len(d.Words) {
		return d.at(pos.Word)
	}
	return d.at(first)
}

// PrevSentence moves to the first word of the preceding sentence, or to the
// first word of the document from the first sentence.
func (d *Document) PrevSentence(pos domain.Position) domain.Position {
	target := d.SentenceOf(pos.Word) - 1
	if target < 0 {
		return d.Start()
	}
	first := d.seg.FirstWordOf(target)
	if first < 0 {
		return d.Start()
	}
	return d.at(first)
}

// Move applies a navigation action. target is only read by NavigateJump.
func (d *Document) Move(pos domain.Position, action domain.NavigationAction, target int) (domain.Position, bool) {
	switch action {
	case domain.NavigateNext:
		return d.Next(pos), true
	case domain.NavigatePrev:
		return d.Prev(pos), true
	case domain.NavigateJump:
		return d.Jump(target)
	case domain.NavigateNextSentence:
		return d.NextSentence(pos), true
	case domain.NavigatePrevSentence:
		return d.PrevSentence(pos), true
	case domain.NavigateRestart:
		return d.Start(), true
	}
	return pos, false
}
