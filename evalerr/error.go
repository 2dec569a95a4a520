// Package evalerr defines the structured error type shared by every stage
// of the interpreter — lexing, parsing, evaluation, and the driver loop —
// along with the source-position types used to render diagnostics.
package evalerr

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind classifies an Error for diagnostic reporting and programmatic
// dispatch (the driver never needs more than the rendered message, but
// callers composing errors do).
type Kind int

const (
	// KindSyntax marks an error surfaced by the parser collaborator.
	KindSyntax Kind = iota
	// KindName marks an unknown-identifier lookup.
	KindName
	// KindType marks arithmetic on a non-scalar, or a lambda body that
	// returned a non-scalar.
	KindType
	// KindArithmetic marks division by zero or pow overflow.
	KindArithmetic
	// KindInternal marks an unreachable state.
	KindInternal
)

// String renders the kind the way it appears in diagnostic messages.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "SyntaxError"
	case KindName:
		return "NameError"
	case KindType:
		return "TypeError"
	case KindArithmetic:
		return "ArithmeticError"
	default:
		return "InternalError"
	}
}

// Pos is a 1-based line, 0-based column source location.
type Pos struct {
	Line int
	Col  int
}

// Span locates an error in the input. A Span may carry only a line (when
// the parser collaborator gives nothing finer), a line and column, or a
// full start-end range.
type Span struct {
	Start  Pos
	End    Pos
	HasCol bool
	HasEnd bool
}

// LineOnly builds a Span carrying just a line number.
func LineOnly(line int) Span {
	return Span{Start: Pos{Line: line}}
}

// AtCol builds a Span carrying a line and column.
func AtCol(line, col int) Span {
	return Span{Start: Pos{Line: line, Col: col}, HasCol: true}
}

// Between builds a Span carrying a start and end line/column.
func Between(line, col, line2, col2 int) Span {
	return Span{
		Start:  Pos{Line: line, Col: col},
		End:    Pos{Line: line2, Col: col2},
		HasCol: true,
		HasEnd: true,
	}
}

// Error is the structured error type produced by every package in this
// module. It carries a classification, a source span, a human-readable
// message, an optional wrapped cause, and structured logging attributes.
type Error struct {
	kind  Kind
	span  Span
	msg   string
	err   error
	attrs []slog.Attr
}

// New constructs an Error with no wrapped cause.
func New(kind Kind, span Span, msg string) *Error {
	return &Error{kind: kind, span: span, msg: msg}
}

// Newf constructs an Error with a formatted message.
func Newf(kind Kind, span Span, format string, args ...any) *Error {
	return New(kind, span, fmt.Sprintf(format, args...))
}

// Wrap constructs an Error that wraps an underlying cause.
func Wrap(kind Kind, span Span, err error, msg string) *Error {
	return &Error{kind: kind, span: span, msg: msg, err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}

	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Span returns the error's source location.
func (e *Error) Span() Span {
	return e.span
}

// With returns a copy of the error carrying additional log attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	n := *e
	n.attrs = append(append([]slog.Attr{}, e.attrs...), attrs...)

	return &n
}

// LogValue implements slog.LogValuer so errors log as a structured group
// instead of a flat string.
func (e *Error) LogValue() slog.Value {
	attrs := append([]slog.Attr{
		slog.String("kind", e.kind.String()),
		slog.String("msg", e.msg),
	}, e.attrs...)

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(attrs...)
}

// Diagnostic renders the wire format the driver writes to standard error:
//
//	ERROR:<line>,<col>:<msg>
//	ERROR:<line>,<col>-<line2>,<col2>:<msg>
//	ERROR:<line>:<msg>
func (e *Error) Diagnostic() string {
	s := e.span

	switch {
	case s.HasEnd:
		return fmt.Sprintf("ERROR:%d,%d-%d,%d:%s", s.Start.Line, s.Start.Col, s.End.Line, s.End.Col, e.msg)
	case s.HasCol:
		return fmt.Sprintf("ERROR:%d,%d:%s", s.Start.Line, s.Start.Col, e.msg)
	default:
		return fmt.Sprintf("ERROR:%d:%s", s.Start.Line, e.msg)
	}
}

// AsError reports whether err is (or wraps) an *Error, returning it.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
