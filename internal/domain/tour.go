package domain

import "time"

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyDifficult:
		return true
	}
	return false
}

type Tour struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Location     string      `json:"location"`
	Price        float64     `json:"price"`
	Duration     string      `json:"duration"`
	MaxGroupSize int         `json:"maxGroupSize"`
	Difficulty   Difficulty  `json:"difficulty"`
	Image        string      `json:"image"`
	StartDates   []time.Time `json:"startDates"`
	Highlights   []string    `json:"highlights"`
	Included     []string    `json:"included"`
	NotIncluded  []string    `json:"notIncluded"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type CreateTourInput struct {
	Title        string
	Description  string
	Location     string
	Price        float64
	Duration     string
	MaxGroupSize int
	Difficulty   Difficulty
	Image        string
	StartDates   []time.Time
	Highlights   []string
	Included     []string
	NotIncluded  []string
}

// UpdateTourInput is a partial patch: nil fields are left untouched.
type UpdateTourInput struct {
	Title        *string
	Description  *string
	Location     *string
	Price        *float64
	Duration     *string
	MaxGroupSize *int
	Difficulty   *Difficulty
	Image        *string
	StartDates   []time.Time
	Highlights   []string
	Included     []string
	NotIncluded  []string
}
