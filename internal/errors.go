package internal

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures the way the CLI reports them.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"  // bad start date, non-integer filename stem
	KindIO           ErrorKind = "io_error"       // unreadable directory, failed write, closed stdin
	KindTemplate     ErrorKind = "template_error" // malformed template
)

// FlowError is a categorized error carried up to the CLI layer, which maps
// invalid input to its own exit code.
type FlowError struct {
	Kind ErrorKind
	Path string // file or stream the error relates to, if any
	Err  error
}

func (e *FlowError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error { return e.Err }

// InvalidInput wraps a caller-facing validation failure.
func InvalidInput(format string, args ...interface{}) error {
	return &FlowError{Kind: KindInvalidInput, Err: fmt.Errorf(format, args...)}
}

// IOError wraps a hard filesystem or stream failure.
func IOError(path string, err error) error {
	return &FlowError{Kind: KindIO, Path: path, Err: err}
}

// TemplateError wraps a template parse or render failure.
func TemplateError(err error) error {
	return &FlowError{Kind: KindTemplate, Err: err}
}

// KindOf returns the kind of err if it is (or wraps) a FlowError.
func KindOf(err error) (ErrorKind, bool) {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// IsInvalidInput reports whether err is a caller-facing validation failure.
func IsInvalidInput(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidInput
}
