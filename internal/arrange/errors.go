package arrange

import (
	"fmt"
	"strings"
)

// Kind identifies which input rule an arrangement failed.
type Kind int

const (
	KindTooManyProblems Kind = iota + 1
	KindFormat
	KindNonDigit
	KindTooManyDigits
	KindInvalidOperator
)

// Error is a user-input error. Its message is the exact text printed in
// place of the arrangement.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below match any error produced for that rule.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

const digitsMessage = "Error: Numbers must only contain digits."

var (
	ErrTooManyProblems = &Error{Kind: KindTooManyProblems, Message: "Error: Too many problems."}
	ErrFormat          = &Error{Kind: KindFormat, Message: digitsMessage}
	ErrNonDigit        = &Error{Kind: KindNonDigit, Message: digitsMessage}
	ErrTooManyDigits   = &Error{Kind: KindTooManyDigits, Message: "Error: Number cannot be more than four digits."}
	ErrInvalidOperator = &Error{Kind: KindInvalidOperator, Message: operatorMessage()}
)

// operatorMessage lists every supported symbol, quoted and joined with "or".
func operatorMessage() string {
	quoted := make([]string, 0, len(supportedOperators))
	for _, op := range supportedOperators {
		quoted = append(quoted, fmt.Sprintf("'%s'", op.Symbol()))
	}
	return "Error: Operator must be " + strings.Join(quoted, " or ") + "."
}
