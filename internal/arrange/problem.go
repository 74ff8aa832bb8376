package arrange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pengelbrecht/arranger/internal/calculator"
)

// MaxOperand is the exclusive upper bound on operand magnitude.
const MaxOperand = 10000

// Operator is the closed set of operations a problem can use.
type Operator int

const (
	// OpUnknown holds an unsupported symbol until validation rejects it.
	OpUnknown Operator = iota
	OpAdd
	OpSubtract
)

var supportedOperators = []Operator{OpAdd, OpSubtract}

// ParseOperator maps a symbol to its Operator, or OpUnknown.
func ParseOperator(symbol string) Operator {
	switch symbol {
	case "+":
		return OpAdd
	case "-":
		return OpSubtract
	default:
		return OpUnknown
	}
}

// Symbol returns the printed form of the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	default:
		return "?"
	}
}

// Apply evaluates left o right.
func (o Operator) Apply(left, right int) int {
	switch o {
	case OpAdd:
		return calculator.Add(left, right)
	case OpSubtract:
		return calculator.Subtract(left, right)
	default:
		return 0
	}
}

// Problem is one "x op y" expression.
type Problem struct {
	Left     int
	Right    int
	Operator Operator

	// symbol is the raw operator token, kept so an unsupported operator
	// still renders as typed.
	symbol string
}

// Parse splits raw into operand, operator and operand tokens.
func Parse(raw string) (Problem, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return Problem{}, ErrFormat
	}

	operands := [2]int{}
	for i, token := range []string{fields[0], fields[2]} {
		if !isDigits(token) {
			return Problem{}, ErrNonDigit
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			// Digit strings that overflow int are left for Validate to reject.
			n = MaxOperand
		}
		operands[i] = n
	}

	return Problem{
		Left:     operands[0],
		Right:    operands[1],
		Operator: ParseOperator(fields[1]),
		symbol:   fields[1],
	}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validate checks operand magnitude, then the operator.
func (p Problem) Validate() error {
	for _, n := range []int{p.Left, p.Right} {
		if abs(n) >= MaxOperand {
			return ErrTooManyDigits
		}
	}
	if p.Operator == OpUnknown {
		return ErrInvalidOperator
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Answer returns the computed result of the problem.
func (p Problem) Answer() int {
	return p.Operator.Apply(p.Left, p.Right)
}

// String renders the problem in the "x op y" form Parse accepts.
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.Left, p.operatorSymbol(), p.Right)
}

func (p Problem) operatorSymbol() string {
	if p.Operator == OpUnknown && p.symbol != "" {
		return p.symbol
	}
	return p.Operator.Symbol()
}

// Width is the digit count of the larger operand.
func (p Problem) Width() int {
	return len(strconv.Itoa(max(p.Left, p.Right)))
}

// FormatLines lays the problem out as right-aligned rows: left operand,
// operator with right operand, dash rule, and the answer when solve is set.
func (p Problem) FormatLines(solve bool) []string {
	width := p.Width()
	lines := []string{
		fmt.Sprintf("%*d", width+2, p.Left),
		fmt.Sprintf("%s %*d", p.operatorSymbol(), width, p.Right),
		strings.Repeat("-", width+2),
	}
	if solve {
		lines = append(lines, fmt.Sprintf("%*d", width+2, p.Answer()))
	}
	return lines
}
