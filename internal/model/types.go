// Package model defines shared data structures.
package model

// Config defines solve settings after flags and the config file are merged.
type Config struct {
	Lang        string
	DictPath    string
	Length      int
	Accents     string
	StrictChars bool
	Format      string
	Limit       int
	Upper       bool
}

// Clues holds constraint text as entered by the user, before parsing.
type Clues struct {
	Patterns   []string
	Present    string
	PresentAny []string
	Absent     string
	Feedback   []string
}

// Empty reports whether no clue was given.
func (c Clues) Empty() bool {
	return len(c.Patterns) == 0 && c.Present == "" && len(c.PresentAny) == 0 &&
		c.Absent == "" && len(c.Feedback) == 0
}

// Suggestion is one ranked candidate ready for display.
type Suggestion struct {
	Rank      int    `json:"rank"`
	Word      string `json:"word"`
	Canonical string `json:"canonical"`
	Score     int    `json:"score"`
}

// StageCounts records how many candidates survived each pipeline stage.
type StageCounts struct {
	Loaded     int `json:"loaded"`
	Normalized int `json:"normalized"`
	OfLength   int `json:"of_length"`
	Unique     int `json:"unique"`
	Matching   int `json:"matching"`
	Shown      int `json:"shown"`
}
