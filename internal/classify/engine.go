package classify

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

const numericChars = "+-0123456789"

// Engine classifies token sequences. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	charset Charset
}

// NewEngine creates an engine using the given character categories.
func NewEngine(cs Charset) *Engine {
	return &Engine{charset: cs}
}

// Charset returns the character categories the engine classifies with.
func (e *Engine) Charset() Charset {
	return e.charset
}

// Classify sorts every token into numbers, letters and special characters.
// It never panics; an unexpected failure is reported as a failed Result.
func (e *Engine) Classify(tokens []string) Result {
	return guard(func() Result { return e.run(tokens) })
}

// guard converts a panic inside fn into a failed Result.
func guard(fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failed(fmt.Errorf("%w: %v", ErrInternal, r))
		}
	}()
	return fn()
}

// tally accumulates one classification run.
type tally struct {
	cs      Charset
	odd     []string
	even    []string
	alpha   []string
	special []string
	letters []rune
	sum     *big.Int
}

func (e *Engine) run(tokens []string) Result {
	t := &tally{
		cs:      e.charset,
		odd:     []string{},
		even:    []string{},
		alpha:   []string{},
		special: []string{},
		sum:     new(big.Int),
	}

	for _, tok := range tokens {
		t.token(tok)
	}

	var concat strings.Builder
	concat.Grow(len(t.letters))
	for _, r := range t.letters {
		concat.WriteRune(t.cs.Invert(r))
	}

	return Result{
		Success:           true,
		OddNumbers:        t.odd,
		EvenNumbers:       t.even,
		Alphabets:         t.alpha,
		SpecialCharacters: t.special,
		Sum:               t.sum.String(),
		ConcatString:      concat.String(),
	}
}

// token applies the first matching rule to tok.
func (t *tally) token(tok string) {
	trimmed := strings.TrimFunc(tok, t.cs.IsSpace)
	if n, ok := parseNumber(trimmed); ok {
		t.sum.Add(t.sum, n)
		// parity of |n| equals parity of n
		if n.Bit(0) == 0 {
			t.even = append(t.even, trimmed)
		} else {
			t.odd = append(t.odd, trimmed)
		}
		return
	}

	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		switch {
		case t.cs.IsLetter(r):
			t.letter(r)
		case !t.cs.IsAlnum(r) && !t.cs.IsSpace(r):
			t.special = append(t.special, tok)
		}
		// a lone digit or whitespace character contributes nothing
		return
	}

	if t.allLetters(tok) {
		for _, r := range tok {
			t.letter(r)
		}
		return
	}

	for _, r := range tok {
		switch {
		case t.cs.IsLetter(r):
			t.letter(r)
		case t.cs.IsDigit(r), t.cs.IsSpace(r):
			// digits inside mixed tokens are never summed
		default:
			t.special = append(t.special, string(r))
		}
	}
}

func (t *tally) letter(r rune) {
	t.letters = append(t.letters, r)
	t.alpha = append(t.alpha, string(t.cs.Upper(r)))
}

func (t *tally) allLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !t.cs.IsLetter(r) {
			return false
		}
	}
	return true
}

// parseNumber reports whether s is a signed decimal integer and returns its value.
// Every byte must be a sign or an ASCII digit, and what follows the leading signs
// must be a non-empty run of digits. Sign runs like "+-5" pass the character
// check but fail the parse and are not numbers.
func parseNumber(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(numericChars, s[i]) < 0 {
			return nil, false
		}
	}
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || strings.ContainsAny(digits, "+-") {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return n, true
}
