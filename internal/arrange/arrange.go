// Package arrange lays out small addition and subtraction problems in
// stacked columns, the way they are written out by hand.
package arrange

import (
	"io"
	"log/slog"
	"strings"
)

const (
	// MaxProblems is the largest batch Arrange accepts.
	MaxProblems = 5

	// DefaultGap separates adjacent problem columns.
	DefaultGap = "    "
)

// Options controls how a batch is rendered.
type Options struct {
	// Solve appends the answer row to every problem.
	Solve bool

	// Gap is placed between columns (default DefaultGap).
	Gap string
}

func (o Options) gap() string {
	if o.Gap == "" {
		return DefaultGap
	}
	return o.Gap
}

// Arranger formats batches of problems.
type Arranger struct {
	opts   Options
	logger *slog.Logger
}

// ArrangerOption configures an Arranger.
type ArrangerOption func(*Arranger)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) ArrangerOption {
	return func(a *Arranger) {
		a.logger = logger
	}
}

// WithOptions sets the rendering options.
func WithOptions(opts Options) ArrangerOption {
	return func(a *Arranger) {
		a.opts = opts
	}
}

// New returns an Arranger. Logging is discarded unless WithLogger is given.
func New(opts ...ArrangerOption) *Arranger {
	a := &Arranger{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lines checks and renders raw problems, returning one string per output
// row. The first failing check aborts the batch: batch size, then parsing
// of every problem in order, then validation of every problem in order.
func (a *Arranger) Lines(raw []string) ([]string, error) {
	if len(raw) > MaxProblems {
		a.logger.Debug("batch rejected", "count", len(raw), "max", MaxProblems)
		return nil, ErrTooManyProblems
	}

	problems := make([]Problem, 0, len(raw))
	for i, s := range raw {
		p, err := Parse(s)
		if err != nil {
			a.logger.Debug("parse failed", "index", i, "input", s, "error", err)
			return nil, err
		}
		problems = append(problems, p)
	}
	for i, p := range problems {
		if err := p.Validate(); err != nil {
			a.logger.Debug("validation failed", "index", i, "problem", p.String(), "error", err)
			return nil, err
		}
	}

	columns := make([][]string, len(problems))
	for i, p := range problems {
		columns[i] = p.FormatLines(a.opts.Solve)
	}
	if len(columns) == 0 {
		return nil, nil
	}

	rows := make([]string, len(columns[0]))
	cells := make([]string, len(columns))
	for r := range rows {
		for c, col := range columns {
			cells[c] = col[r]
		}
		rows[r] = strings.Join(cells, a.opts.gap())
	}
	a.logger.Debug("arranged", "problems", len(problems), "rows", len(rows), "solve", a.opts.Solve)
	return rows, nil
}

// Arrange returns the composed text for raw, or the first input error.
func (a *Arranger) Arrange(raw []string) (string, error) {
	rows, err := a.Lines(raw)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

// Arrange formats raw with default options.
func Arrange(raw []string, solve bool) (string, error) {
	return New(WithOptions(Options{Solve: solve})).Arrange(raw)
}

// Output is what the tool prints for raw: the arrangement, or the message
// of the error that stopped it.
func Output(raw []string, solve bool) string {
	out, err := Arrange(raw, solve)
	if err != nil {
		return err.Error()
	}
	return out
}
