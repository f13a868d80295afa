// Package apperr defines the error taxonomy shared by the journal packages.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrConfig     = errors.New("configuration error")
	ErrFilesystem = errors.New("filesystem error")
	ErrEncoding   = errors.New("encoding error")
)

// Error carries the failure kind together with the operation and path that
// produced it. errors.Is matches both the kind and the underlying cause.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Config wraps a configuration failure.
func Config(err error) error {
	return &Error{Kind: ErrConfig, Err: err}
}

// FS wraps a file-system failure of op on path.
func FS(op, path string, err error) error {
	return &Error{Kind: ErrFilesystem, Op: op, Path: path, Err: err}
}

// Encoding reports non-text content found in path at the given line.
func Encoding(path string, line int) error {
	return &Error{Kind: ErrEncoding, Op: "scan", Path: path, Err: fmt.Errorf("invalid UTF-8 on line %d", line)}
}
