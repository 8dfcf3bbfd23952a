package texide

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/juju/errors"
)

// IOError wraps a failure reading from the underlying byte source.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %s", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err, which must have come from reading the root byte
// source, as an IOError.
func NewIOError(err error) error {
	return errors.Trace(&IOError{Err: err})
}

// InvalidTokenError is returned when the lexer peeks a character whose
// category code is Invalid.
type InvalidTokenError struct {
	Source *Source
}

func (e *InvalidTokenError) Error() string {
	return "invalid token"
}

// NewInvalidTokenError builds an InvalidTokenError located at src.
func NewInvalidTokenError(src *Source) error {
	return errors.Annotatef(&InvalidTokenError{Source: src}, "invalid character at %s", src)
}

// MalformedControlSequenceError is returned when an escape character is
// the last character of the input.
type MalformedControlSequenceError struct {
	Source *Source
}

func (e *MalformedControlSequenceError) Error() string {
	return "expected the escape character to be followed by the name of a control sequence"
}

// NewMalformedControlSequenceError builds a MalformedControlSequenceError
// located at the escape token's source.
func NewMalformedControlSequenceError(src *Source) error {
	return errors.Annotatef(&MalformedControlSequenceError{Source: src}, "malformed control sequence at %s", src)
}

// UnexpectedEndOfInputError is returned when a primitive runs out of
// tokens mid-argument.
type UnexpectedEndOfInputError struct{}

func (e *UnexpectedEndOfInputError) Error() string {
	return "unexpected end of input"
}

// NewUnexpectedEndOfInputError builds an UnexpectedEndOfInputError.
func NewUnexpectedEndOfInputError() error {
	return errors.Trace(&UnexpectedEndOfInputError{})
}

// ScopeUnderflowError describes an EndScope call with no matching
// BeginScope. This is a programmer error, not a recoverable input error.
// ScopedMap.EndScope and CategoryTable.EndScope do not return it; they
// report that case by returning false.
type ScopeUnderflowError struct{}

func (e *ScopeUnderflowError) Error() string {
	return "end_scope called with no open scope"
}

// NewScopeUnderflowError builds a ScopeUnderflowError.
func NewScopeUnderflowError() error {
	return errors.Trace(&ScopeUnderflowError{})
}

// RenderError formats err for the standard error output described in
// spec.md §6: a heading, an optional "> file:line:col" location line with
// the offending source line and a caret under the offending column, and
// optional trailing notes.
func RenderError(err error, notes ...string) string {
	var b strings.Builder

	heading := color.New(color.FgRed, color.Bold).Sprint("Error")
	fmt.Fprintf(&b, "%s: %s\n", heading, errors.Cause(err).Error())

	if src := errorSource(err); src != nil && src.Line != nil {
		bar := color.New(color.FgYellow, color.Bold).Sprint("|")
		arrow := color.New(color.FgYellow, color.Bold).Sprint(">")
		caretMark := color.New(color.FgRed, color.Bold).Sprint("^")

		fmt.Fprintf(&b, " %s %s:%d:%d\n", arrow, src.Line.FileName, src.Line.LineNumber, src.Column)
		fmt.Fprintf(&b, "  %s\n", bar)
		fmt.Fprintf(&b, "  %s %s\n", bar, strings.TrimRight(src.Line.Content, "\n"))
		fmt.Fprintf(&b, "  %s %s%s\n", bar, strings.Repeat(" ", src.Column), caretMark)
	}

	for _, note := range notes {
		mark := color.New(color.FgYellow, color.Bold).Sprint("=")
		fmt.Fprintf(&b, "  %s %s\n", mark, "note: "+note)
	}

	return b.String()
}

// errorSource extracts the Source carried by the taxonomy errors that have
// one, unwrapping juju/errors' annotation chain first.
func errorSource(err error) *Source {
	switch e := errors.Cause(err).(type) {
	case *InvalidTokenError:
		return e.Source
	case *MalformedControlSequenceError:
		return e.Source
	default:
		return nil
	}
}
