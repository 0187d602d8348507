package classify

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode"
)

func classifyASCII(tokens ...string) Result {
	return NewEngine(ASCII).Classify(tokens)
}

func assertList(t *testing.T, name string, got, want []string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	if got == nil {
		t.Fatalf("%s is nil, want non-nil slice", name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s = %q, want %q", name, got, want)
	}
}

// Scenarios

func TestClassify_MixedSingles(t *testing.T) {
	t.Parallel()

	res := classifyASCII("a", "b", "$", "3", "4")

	if !res.Success {
		t.Fatalf("Success = false, error = %q", res.Error)
	}
	assertList(t, "OddNumbers", res.OddNumbers, []string{"3"})
	assertList(t, "EvenNumbers", res.EvenNumbers, []string{"4"})
	assertList(t, "Alphabets", res.Alphabets, []string{"A", "B"})
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"$"})
	if res.Sum != "7" {
		t.Errorf("Sum = %q, want %q", res.Sum, "7")
	}
	if res.ConcatString != "AB" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "AB")
	}
}

func TestClassify_SignedAndPadded(t *testing.T) {
	t.Parallel()

	res := classifyASCII("+8", "-5", "007")

	assertList(t, "EvenNumbers", res.EvenNumbers, []string{"+8"})
	assertList(t, "OddNumbers", res.OddNumbers, []string{"-5", "007"})
	if res.Sum != "10" {
		t.Errorf("Sum = %q, want %q", res.Sum, "10")
	}
}

func TestClassify_MixedToken(t *testing.T) {
	t.Parallel()

	res := classifyASCII("Hello!")

	assertList(t, "Alphabets", res.Alphabets, []string{"H", "E", "L", "L", "O"})
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"!"})
	if res.ConcatString != "hELLO" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "hELLO")
	}
	if res.Sum != "0" {
		t.Errorf("Sum = %q, want %q", res.Sum, "0")
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, in := range [][]string{nil, {}} {
		res := NewEngine(ASCII).Classify(in)
		if !res.Success {
			t.Fatalf("Success = false for %v", in)
		}
		assertList(t, "OddNumbers", res.OddNumbers, nil)
		assertList(t, "EvenNumbers", res.EvenNumbers, nil)
		assertList(t, "Alphabets", res.Alphabets, nil)
		assertList(t, "SpecialCharacters", res.SpecialCharacters, nil)
		if res.Sum != "0" {
			t.Errorf("Sum = %q, want %q", res.Sum, "0")
		}
		if res.ConcatString != "" {
			t.Errorf("ConcatString = %q, want empty", res.ConcatString)
		}
		if res.Error != "" {
			t.Errorf("Error = %q, want empty", res.Error)
		}
	}
}

func TestClassify_WhitespaceTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"two spaces", "  "},
		{"single space", " "},
		{"tab", "\t"},
		{"newline", "\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := classifyASCII(tt.token)
			assertList(t, "SpecialCharacters", res.SpecialCharacters, nil)
			assertList(t, "Alphabets", res.Alphabets, nil)
			assertList(t, "OddNumbers", res.OddNumbers, nil)
			assertList(t, "EvenNumbers", res.EvenNumbers, nil)
			if res.Sum != "0" {
				t.Errorf("Sum = %q, want %q", res.Sum, "0")
			}
		})
	}
}

// Numeric detection

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0", "0", true},
		{"42", "42", true},
		{"+008", "8", true},
		{"-0", "0", true},
		{"-17", "-17", true},
		{"123456789012345678901234567890", "123456789012345678901234567890", true},
		{"", "", false},
		{"+", "", false},
		{"-", "", false},
		{"+-", "", false},
		{"+-5", "", false},
		{"--5", "", false},
		{"5-", "", false},
		{"1-2", "", false},
		{"1.5", "", false},
		{"1e3", "", false},
		{"0x10", "", false},
		{"1_000", "", false},
		{" 5", "", false},
		{"٣", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			n, ok := parseNumber(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("parseNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && n.String() != tt.want {
				t.Errorf("parseNumber(%q) = %s, want %s", tt.in, n.String(), tt.want)
			}
		})
	}
}

func TestClassify_NumericTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tokens   []string
		wantOdd  []string
		wantEven []string
		wantSum  string
	}{
		{"negative odd", []string{"-3"}, []string{"-3"}, nil, "-3"},
		{"negative even", []string{"-4"}, nil, []string{"-4"}, "-4"},
		{"zero is even", []string{"0"}, nil, []string{"0"}, "0"},
		{"signed zero keeps sign", []string{"-0", "+0"}, nil, []string{"-0", "+0"}, "0"},
		{"surrounding whitespace trimmed", []string{"  12 ", "\t7\n"}, []string{"7"}, []string{"12"}, "19"},
		{"leading zeros kept", []string{"0010", "+0003"}, []string{"+0003"}, []string{"0010"}, "13"},
		{"beyond int64", []string{"9223372036854775807", "9223372036854775807"}, []string{"9223372036854775807", "9223372036854775807"}, nil, "18446744073709551614"},
		{"large negative", []string{"-100000000000000000000", "1"}, []string{"1"}, []string{"-100000000000000000000"}, "-99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := NewEngine(ASCII).Classify(tt.tokens)
			assertList(t, "OddNumbers", res.OddNumbers, tt.wantOdd)
			assertList(t, "EvenNumbers", res.EvenNumbers, tt.wantEven)
			if res.Sum != tt.wantSum {
				t.Errorf("Sum = %q, want %q", res.Sum, tt.wantSum)
			}
		})
	}
}

func TestClassify_SignRunsFallThrough(t *testing.T) {
	t.Parallel()

	res := classifyASCII("+-5", "--5", "-")

	assertList(t, "OddNumbers", res.OddNumbers, nil)
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"+", "-", "-", "-", "-"})
	if res.Sum != "0" {
		t.Errorf("Sum = %q, want %q", res.Sum, "0")
	}
}

func TestClassify_DigitsInMixedTokensNotSummed(t *testing.T) {
	t.Parallel()

	res := classifyASCII("abc123", "4 5", "9#")

	assertList(t, "OddNumbers", res.OddNumbers, nil)
	assertList(t, "EvenNumbers", res.EvenNumbers, nil)
	assertList(t, "Alphabets", res.Alphabets, []string{"A", "B", "C"})
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"#"})
	if res.Sum != "0" {
		t.Errorf("Sum = %q, want %q", res.Sum, "0")
	}
}

// Letters

func TestClassify_LetterTokens(t *testing.T) {
	t.Parallel()

	res := classifyASCII("A", "bC", "xyz")

	assertList(t, "Alphabets", res.Alphabets, []string{"A", "B", "C", "X", "Y", "Z"})
	if res.ConcatString != "aBcXYZ" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "aBcXYZ")
	}
}

func TestClassify_Ordering(t *testing.T) {
	t.Parallel()

	res := classifyASCII("z", "1", "a@b", "2", "#", "Q")

	assertList(t, "Alphabets", res.Alphabets, []string{"Z", "A", "B", "Q"})
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"@", "#"})
	assertList(t, "OddNumbers", res.OddNumbers, []string{"1"})
	assertList(t, "EvenNumbers", res.EvenNumbers, []string{"2"})
	if res.ConcatString != "ZABq" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "ZABq")
	}
}

// Charset policy

func TestClassify_ASCIITreatsNonASCIILettersAsSpecial(t *testing.T) {
	t.Parallel()

	res := classifyASCII("é", "naïve")

	assertList(t, "Alphabets", res.Alphabets, []string{"N", "A", "V", "E"})
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"é", "ï"})
	if res.ConcatString != "NAVE" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "NAVE")
	}
}

func TestClassify_UnicodeLetters(t *testing.T) {
	t.Parallel()

	res := NewEngine(Unicode).Classify([]string{"é", "Ünï", "ж٣!", " "})

	assertList(t, "Alphabets", res.Alphabets, []string{"É", "Ü", "N", "Ï", "Ж"})
	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"!"})
	if res.ConcatString != "ÉüNÏЖ" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "ÉüNÏЖ")
	}
}

func TestClassify_UnicodeCaseMappingIsSingleRune(t *testing.T) {
	t.Parallel()

	// ß has no single-rune uppercase, so it is kept as is
	res := NewEngine(Unicode).Classify([]string{"ß", "Straße"})

	assertList(t, "Alphabets", res.Alphabets, []string{"ß", "S", "T", "R", "A", "ß", "E"})
	if res.ConcatString != "ßsTRAßE" {
		t.Errorf("ConcatString = %q, want %q", res.ConcatString, "ßsTRAßE")
	}
}

func TestClassify_ControlSeparatorsAreWhitespace(t *testing.T) {
	t.Parallel()

	for _, cs := range []Charset{ASCII, Unicode} {
		t.Run(cs.String(), func(t *testing.T) {
			t.Parallel()

			res := NewEngine(cs).Classify([]string{"\x1c5\x1f", "a\x1eb", "\x1d"})

			assertList(t, "OddNumbers", res.OddNumbers, []string{"5"})
			assertList(t, "SpecialCharacters", res.SpecialCharacters, nil)
			assertList(t, "Alphabets", res.Alphabets, []string{"A", "B"})
			if res.Sum != "5" {
				t.Errorf("Sum = %q, want %q", res.Sum, "5")
			}
			if res.ConcatString != "AB" {
				t.Errorf("ConcatString = %q, want %q", res.ConcatString, "AB")
			}
		})
	}
}

func TestCharset_IsSpace(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e, 0x1f} {
		if !ASCII.IsSpace(r) || !Unicode.IsSpace(r) {
			t.Errorf("IsSpace(%U) = false, want true in both charsets", r)
		}
	}
	for _, r := range []rune{0x1b, 0x7f, 'a', '0', '_'} {
		if ASCII.IsSpace(r) {
			t.Errorf("ASCII.IsSpace(%U) = true, want false", r)
		}
	}
	if ASCII.IsSpace(0xa0) || !Unicode.IsSpace(0xa0) {
		t.Error("no-break space should be whitespace only in unicode mode")
	}
}

func TestClassify_UnicodeNumericFormsDiscarded(t *testing.T) {
	t.Parallel()

	res := NewEngine(Unicode).Classify([]string{"Z!²Z", "①", "x³"})

	assertList(t, "SpecialCharacters", res.SpecialCharacters, []string{"!"})
	assertList(t, "Alphabets", res.Alphabets, []string{"Z", "Z", "X"})
	assertList(t, "OddNumbers", res.OddNumbers, nil)
	assertList(t, "EvenNumbers", res.EvenNumbers, nil)
	if res.Sum != "0" {
		t.Errorf("Sum = %q, want %q", res.Sum, "0")
	}

	ascii := classifyASCII("Z!²Z")
	assertList(t, "ASCII SpecialCharacters", ascii.SpecialCharacters, []string{"!", "²"})
}

func TestParseCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Charset
		wantErr bool
	}{
		{"ascii", ASCII, false},
		{"ASCII", ASCII, false},
		{" unicode ", Unicode, false},
		{"latin1", ASCII, true},
		{"", ASCII, true},
	}

	for _, tt := range tests {
		got, err := ParseCharset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCharset(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseCharset(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Properties

func TestClassify_Properties(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"a", "b", "$", "3", "4"},
		{"Hello!", "World 42", "-7", "+0", "x_y-z"},
		{"  ", "", " A ", "~", "9", "aB9$ %"},
		{"MiXeD", "CaSe", "--", "++1", "1+1"},
	}

	for _, in := range inputs {
		for _, cs := range []Charset{ASCII, Unicode} {
			e := NewEngine(cs)
			res := e.Classify(in)

			if len(res.ConcatString) != len(res.Alphabets) {
				t.Errorf("%v: len(ConcatString) = %d, len(Alphabets) = %d", in, len(res.ConcatString), len(res.Alphabets))
			}
			for i, a := range res.Alphabets {
				if a != strings.ToUpper(a) || len([]rune(a)) != 1 {
					t.Errorf("%v: Alphabets[%d] = %q, want single uppercase letter", in, i, a)
				}
				if !strings.EqualFold(a, string(res.ConcatString[i])) {
					t.Errorf("%v: ConcatString[%d] = %q does not match %q", in, i, res.ConcatString[i], a)
				}
			}
			for _, s := range res.SpecialCharacters {
				for _, r := range s {
					if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
						t.Errorf("%v: special character %q is a letter, digit or space", in, s)
					}
				}
			}
			for _, n := range res.OddNumbers {
				if v, ok := parseNumber(n); !ok || v.Bit(0) != 1 {
					t.Errorf("%v: odd number %q does not parse as odd", in, n)
				}
			}
			for _, n := range res.EvenNumbers {
				if v, ok := parseNumber(n); !ok || v.Bit(0) != 0 {
					t.Errorf("%v: even number %q does not parse as even", in, n)
				}
			}

			if again := e.Classify(in); !reflect.DeepEqual(res, again) {
				t.Errorf("%v: second Classify differs: %+v vs %+v", in, res, again)
			}
		}
	}
}

// Failure path

func TestGuard_RecoversPanic(t *testing.T) {
	t.Parallel()

	res := guard(func() Result { panic("boom") })

	if res.Success {
		t.Fatal("Success = true, want false after panic")
	}
	if !strings.Contains(res.Error, "boom") || !strings.Contains(res.Error, ErrInternal.Error()) {
		t.Errorf("Error = %q, want cause and %q", res.Error, ErrInternal)
	}
	if res.Sum != "0" || res.ConcatString != "" {
		t.Errorf("Sum = %q ConcatString = %q, want \"0\" and empty", res.Sum, res.ConcatString)
	}
	assertList(t, "OddNumbers", res.OddNumbers, nil)
	assertList(t, "EvenNumbers", res.EvenNumbers, nil)
	assertList(t, "Alphabets", res.Alphabets, nil)
	assertList(t, "SpecialCharacters", res.SpecialCharacters, nil)
}

func TestGuard_PassesThroughResult(t *testing.T) {
	t.Parallel()

	want := Result{Success: true, Sum: "5"}
	got := guard(func() Result { return want })
	if !reflect.DeepEqual(got, want) {
		t.Errorf("guard() = %+v, want %+v", got, want)
	}
}

func TestFailed(t *testing.T) {
	t.Parallel()

	res := Failed(errors.New("bad input"))
	if res.Success || res.Error != "bad input" || res.Sum != "0" {
		t.Errorf("Failed() = %+v", res)
	}
}
