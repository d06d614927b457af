package domain

// Position is the reader's place in a story: the current word and the
// sentence that word maps to.
type Position struct {
	Word     int `json:"word"`
	Sentence int `json:"sentence"`
}

// SpeechTarget selects what an utterance reads aloud.
type SpeechTarget string

const (
	SpeechTargetWord     SpeechTarget = "word"
	SpeechTargetSentence SpeechTarget = "sentence"
	SpeechTargetSyllable SpeechTarget = "syllable"
)

func (t SpeechTarget) String() string { return string(t) }

func (t SpeechTarget) IsValid() bool {
	switch t {
	case SpeechTargetWord, SpeechTargetSentence, SpeechTargetSyllable:
		return true
	}
	return false
}

// Utterance is the exact text handed to the external speech engine,
// together with the playback rate.
type Utterance struct {
	Target SpeechTarget `json:"target"`
	Text   string       `json:"text"`
	Rate   float64      `json:"rate"`
}

// NavigationAction is a reader movement through a story.
type NavigationAction string

const (
	NavigateNext         NavigationAction = "next"
	NavigatePrev         NavigationAction = "prev"
	NavigateJump         NavigationAction = "jump"
	NavigateNextSentence NavigationAction = "next_sentence"
	NavigatePrevSentence NavigationAction = "prev_sentence"
	NavigateRestart      NavigationAction = "restart"
)

func (a NavigationAction) String() string { return string(a) }

func (a NavigationAction) IsValid() bool {
	switch a {
	case NavigateNext, NavigatePrev, NavigateJump, NavigateNextSentence, NavigatePrevSentence, NavigateRestart:
		return true
	}
	return false
}

// ReadingSettings are the reading-assistant limits applied by the reading service.
type ReadingSettings struct {
	DefaultSpeechRate float64
	MinSpeechRate     float64
	MaxSpeechRate     float64
	AutoPlay          bool
	MaxTextLength     int
	MaxBatchWords     int
	Workers           int
}

// ClampRate limits a requested speech rate to the configured bounds.
// A zero rate selects the default.
func (s ReadingSettings) ClampRate(rate float64) float64 {
	switch {
	case rate == 0:
		return s.DefaultSpeechRate
	case rate < s.MinSpeechRate:
		return s.MinSpeechRate
	case rate > s.MaxSpeechRate:
		return s.MaxSpeechRate
	}
	return rate
}
