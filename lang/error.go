package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrEmptyInput      = NewError("no input to parse")
	ErrUnboundVariable = NewError("unbound variable")
	ErrDivideByZero    = NewError("integer division by zero")
	ErrReadInput       = NewError("failed to read input")
	ErrInvalidUTF8     = NewError("input is not valid UTF-8")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error carrying the same base message.
// Derived errors created with [Error.With] or [Error.Wrap] keep their base
// message, so errors.Is matches them against the original sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.msg != "" && e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// SyntaxError is a lex or parse error positioned at a byte offset into the
// original source. Its Error string is the caret-annotated rendering
// produced by [Annotate].
type SyntaxError struct {
	Source string // The complete original input
	Pos    int    // Byte offset of the offending character or token
	Msg    string // Fixed human-readable description
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return Annotate(e.Source, e.Pos, e.Msg)
}

// LogValue implements slog.LogValuer for structured logging.
func (e *SyntaxError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Msg),
		slog.Int("pos", e.Pos),
	)
}

// Annotate renders a positioned diagnostic for the given source text:
// the message, then the offending source line prefixed with its line
// number, then a caret line pointing at the offending column. The caret
// indentation accounts for the width of the line-number label.
//
//	unexpected character
//	2| let x = 5 @ 3
//	             ^
func Annotate(source string, pos int, msg string) string {
	if pos > len(source) {
		pos = len(source)
	}

	lineStart := strings.LastIndexByte(source[:pos], '\n') + 1

	lineEnd := strings.IndexByte(source[pos:], '\n')
	if lineEnd < 0 {
		lineEnd = len(source)
	} else {
		lineEnd += pos
	}

	label := strconv.Itoa(strings.Count(source[:pos], "\n") + 1)

	var sb strings.Builder

	sb.WriteString(msg)
	sb.WriteByte('\n')
	sb.WriteString(label)
	sb.WriteString("| ")
	sb.WriteString(source[lineStart:lineEnd])
	sb.WriteByte('\n')
	// The "| " separator adds two columns to the label width.
	sb.WriteString(strings.Repeat(" ", pos-lineStart+len(label)+2))
	sb.WriteByte('^')

	return sb.String()
}
