package arrange

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    Problem
		wantErr error
	}{
		{"addition", "32 + 698", Problem{Left: 32, Right: 698, Operator: OpAdd, symbol: "+"}, nil},
		{"subtraction", "3801 - 2", Problem{Left: 3801, Right: 2, Operator: OpSubtract, symbol: "-"}, nil},
		{"extra whitespace", "  45\t+   43 ", Problem{Left: 45, Right: 43, Operator: OpAdd, symbol: "+"}, nil},
		{"unsupported operator parses", "3 / 4", Problem{Left: 3, Right: 4, Operator: OpUnknown, symbol: "/"}, nil},
		{"too few tokens", "3 +", Problem{}, ErrFormat},
		{"too many tokens", "1 + 2 + 3", Problem{}, ErrFormat},
		{"empty", "", Problem{}, ErrFormat},
		{"word operand", "11 + four", Problem{}, ErrNonDigit},
		{"signed operand", "-1 + 2", Problem{}, ErrNonDigit},
		{"decimal operand", "1.5 + 2", Problem{}, ErrNonDigit},
		{"separator in operand", "1,000 + 2", Problem{}, ErrNonDigit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tc.raw, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseOverflowIsRejectedByValidate(t *testing.T) {
	p, err := Parse("99999999999999999999999 + 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := p.Validate(); !errors.Is(err, ErrTooManyDigits) {
		t.Fatalf("expected ErrTooManyDigits, got %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, left := range []int{0, 7, 42, 999, 9999} {
		for _, right := range []int{0, 3, 85, 1234} {
			for _, op := range supportedOperators {
				want := Problem{Left: left, Right: right, Operator: op, symbol: op.Symbol()}
				got, err := Parse(want.String())
				if err != nil {
					t.Fatalf("Parse(%q): %v", want.String(), err)
				}
				if got != want {
					t.Fatalf("Parse(%q) = %+v, want %+v", want.String(), got, want)
				}
			}
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"valid", "9999 + 9999", nil},
		{"left too long", "10000 + 1", ErrTooManyDigits},
		{"right too long", "24 + 85215", ErrTooManyDigits},
		{"leading zeros keep value", "00012 - 3", nil},
		{"division", "3 / 4", ErrInvalidOperator},
		{"multiplication", "3 * 4", ErrInvalidOperator},
		{"digits checked before operator", "12345 * 1", ErrTooManyDigits},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.raw, err)
			}
			err = p.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate(%q) unexpected error: %v", tc.raw, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate(%q) error = %v, want %v", tc.raw, err, tc.wantErr)
			}
		})
	}
}

func TestInvalidOperatorMessageListsOperators(t *testing.T) {
	want := "Error: Operator must be '+' or '-'."
	if got := ErrInvalidOperator.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	if errors.Is(ErrFormat, ErrNonDigit) {
		t.Fatalf("format and non-digit errors should not match each other")
	}
	if ErrFormat.Error() != ErrNonDigit.Error() {
		t.Fatalf("format and non-digit errors should print the same message")
	}
}

func TestFormatLines(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		solve bool
		want  []string
	}{
		{"unsolved", "32 + 698", false, []string{"   32", "+ 698", "-----"}},
		{"solved", "32 + 698", true, []string{"   32", "+ 698", "-----", "  730"}},
		{"short right operand", "3801 - 2", true, []string{"  3801", "-    2", "------", "  3799"}},
		{"negative answer", "1 - 9", true, []string{"  1", "- 9", "---", " -8"}},
		{"answer wider than operands", "9999 + 9999", true, []string{"  9999", "+ 9999", "------", " 19998"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.raw, err)
			}
			got := p.FormatLines(tc.solve)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Errorf("FormatLines(%q, %v) = %q, want %q", tc.raw, tc.solve, got, tc.want)
			}
		})
	}
}

func TestFormatLinesShareFieldWidth(t *testing.T) {
	for _, raw := range []string{"1 + 2222", "4444 - 3", "12 + 12", "0 - 0"} {
		p, err := Parse(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		lines := p.FormatLines(true)
		if len(lines) != 4 {
			t.Fatalf("%q: expected 4 lines, got %d", raw, len(lines))
		}
		width := p.Width() + 2
		for i, line := range lines {
			if len(line) != width {
				t.Errorf("%q line %d: length %d, want %d", raw, i, len(line), width)
			}
		}
		answer, err := strconv.Atoi(strings.TrimSpace(lines[3]))
		if err != nil {
			t.Fatalf("%q: answer row %q: %v", raw, lines[3], err)
		}
		if answer != p.Answer() {
			t.Errorf("%q: answer row %d, want %d", raw, answer, p.Answer())
		}
	}
}
