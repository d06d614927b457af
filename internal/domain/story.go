package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the reading level of a story.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyPoetry       Difficulty = "poetry"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyPoetry:
		return true
	}
	return false
}

// Rank orders difficulties from easiest to hardest; poetry sorts last.
// Unknown values rank after every known one.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	case DifficultyPoetry:
		return 4
	}
	return 5
}

// Story is a short text offered for guided reading.
type Story struct {
	ID                 uuid.UUID
	Slug               string
	Title              string
	Difficulty         Difficulty
	Description        string
	WordCount          int
	ReadingTimeMinutes int
	Content            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StoryFilter contains filtering/pagination parameters for story listing.
type StoryFilter struct {
	Difficulty *Difficulty
	Query      *string // matched against the normalized title
	Limit      int
	Offset     int
}
