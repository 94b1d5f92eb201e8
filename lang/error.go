package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrSourceNotFound = NewError("source not found")
	ErrSourceNotFile  = NewError("source is not a regular file")
	ErrReadInput      = NewError("failed to read input")
	ErrReference      = NewError("undefined reference")
	ErrNoPrompter     = NewError("no prompter configured")
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

// Is reports whether target is the sentinel this error was derived from.
// Errors returned by [Error.Wrap] and [Error.With] share the message of
// their sentinel, so errors.Is(err, ErrReference) holds for all of them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.msg != "" && t.msg == e.msg
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

// Attrs returns the structured attributes attached to the error.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

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

// Context identifies which slot of a block a line was parsed in.
type Context int

const (
	// ContextTitle is the first line of a block.
	ContextTitle Context = iota

	// ContextSecondLine is the second line of a block, which holds either a
	// description or a config.
	ContextSecondLine

	// ContextConfig is any line after the second.
	ContextConfig
)

// String returns a string representation of the context.
func (c Context) String() string {
	switch c {
	case ContextTitle:
		return "title"
	case ContextSecondLine:
		return "description or config"
	case ContextConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ParseError reports a template line that does not match the grammar
// expected at its position within a block.
type ParseError struct {
	Source      string  // Path of the template being parsed
	Line        Line    // The offending line, verbatim
	Context     Context // Slot of the block the line occupies
	Explanation string  // What was expected at this position
}

// NewParseError returns a ParseError for line in the given context, with the
// standard explanation for that context.
func NewParseError(source string, line Line, ctx Context) *ParseError {
	return &ParseError{
		Source:      source,
		Line:        line,
		Context:     ctx,
		Explanation: explain(source, ctx),
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	num := strconv.Itoa(e.Line.Number)

	var sb strings.Builder

	sb.WriteString("\n==> Parsing error at line ")
	sb.WriteString(num)
	sb.WriteString(":\n    ")
	sb.WriteString(e.Explanation)
	sb.WriteString("\n\n    The content of the line ")
	sb.WriteString(num)
	sb.WriteString(" is:\n    ")
	sb.WriteString(e.Line.Contents)
	sb.WriteString("\n")

	return sb.String()
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "parse error"),
		slog.String("source", e.Source),
		slog.Int("line", e.Line.Number),
		slog.String("contents", e.Line.Contents),
		slog.String("context", e.Context.String()),
	)
}

func explain(source string, ctx Context) string {
	switch ctx {
	case ContextTitle:
		return "This is the first line of a block in " + source + ". " +
			"Blocks are groups of lines separated from each other by one or " +
			"more empty lines, and the first line of a block must be its " +
			"title: `# ` followed by the title text. This line does not " +
			"match that pattern."

	case ContextSecondLine:
		return "This is the second line of a block in " + source + ". " +
			"Blocks are groups of lines separated from each other by one or " +
			"more empty lines, and the second line of a block must be either " +
			"a description (`# ` followed by the description text) or a " +
			"config variable (a name in capital ASCII letters, digits or " +
			"underscores, followed by an equal sign). This line matches " +
			"neither pattern."

	case ContextConfig:
		return "This line was expected to be a config variable: a name in " +
			"capital ASCII letters, digits or underscores, followed by an " +
			"equal sign and an optional value. This line does not match " +
			"that pattern."

	default:
		return "This line could not be parsed."
	}
}
