package classify

import (
	"errors"
	"time"
)

// ErrInternal marks a classification that failed unexpectedly.
var ErrInternal = errors.New("internal classification failure")

// Result is the outcome of classifying one input sequence.
type Result struct {
	Success           bool     `json:"is_success"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
	Error             string   `json:"error,omitempty"`
}

// Failed returns the all-or-nothing result reported when classification breaks.
func Failed(err error) Result {
	return Result{
		Success:           false,
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
		Sum:               "0",
		ConcatString:      "",
		Error:             err.Error(),
	}
}

// Outcome is a Result tagged with the identity and timing of the run that produced it.
type Outcome struct {
	ID       string
	Result   Result
	Tokens   int
	Duration time.Duration
}
