package classify

import (
	"fmt"
	"strings"
	"unicode"
)

// Charset selects which code points count as letters, digits and whitespace.
type Charset int

const (
	// ASCII restricts every category to the ASCII range
	ASCII Charset = iota

	// Unicode uses the Unicode letter, decimal digit and space categories
	Unicode
)

// ParseCharset maps a config value ("ascii" or "unicode") to a Charset.
func ParseCharset(s string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return ASCII, nil
	case "unicode":
		return Unicode, nil
	default:
		return ASCII, fmt.Errorf("unknown charset %q (want ascii or unicode)", s)
	}
}

func (c Charset) String() string {
	if c == Unicode {
		return "unicode"
	}
	return "ascii"
}

// IsLetter reports whether r is an alphabetic letter.
func (c Charset) IsLetter(r rune) bool {
	if c == Unicode {
		return unicode.IsLetter(r)
	}
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsDigit reports whether r is a digit. In Unicode mode this includes
// numeric forms such as superscripts and circled digits.
func (c Charset) IsDigit(r rune) bool {
	if c == Unicode {
		return unicode.IsNumber(r)
	}
	return '0' <= r && r <= '9'
}

// IsSpace reports whether r is whitespace. The ASCII file, group, record
// and unit separators (0x1c..0x1f) count as whitespace in both modes.
func (c Charset) IsSpace(r rune) bool {
	if isSeparator(r) {
		return true
	}
	if c == Unicode {
		return unicode.IsSpace(r)
	}
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	return 0x1c <= r && r <= 0x1f
}

// IsAlnum reports whether r is a letter or a digit.
func (c Charset) IsAlnum(r rune) bool {
	return c.IsLetter(r) || c.IsDigit(r)
}

// Upper returns the uppercase form of a letter.
func (c Charset) Upper(r rune) rune {
	if c == Unicode {
		return unicode.ToUpper(r)
	}
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Invert flips the case of a letter: lowercase becomes uppercase, anything else lowercase.
func (c Charset) Invert(r rune) rune {
	if c == Unicode {
		if unicode.IsLower(r) {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	}
	switch {
	case 'a' <= r && r <= 'z':
		return r - ('a' - 'A')
	case 'A' <= r && r <= 'Z':
		return r + ('a' - 'A')
	}
	return r
}
