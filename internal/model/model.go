// Package model contains the launch configuration and the error kinds shared by all layers
package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// EnvIgnoreCase - if this variable is present in the environment, search ignores case
const EnvIgnoreCase = "IGNORE_CASE"

// Config - immutable parameters of one invocation
type Config struct {
	Query      string // подстрока для поиска
	FilePath   string // путь к файлу, который читается целиком
	IgnoreCase bool   // true если в окружении есть IGNORE_CASE
}

// ErrorKind - closed set of failures the app can report
type ErrorKind uint8

const (
	KindInsufficientArguments ErrorKind = iota + 1
	KindFileRead
)

func (k ErrorKind) String() string {
	switch k {
	case KindInsufficientArguments:
		return "insufficient arguments"
	case KindFileRead:
		return "file read error"
	default:
		return fmt.Sprintf("unknown error kind %d", uint8(k))
	}
}

// Error carries the kind plus the underlying cause, if any
type Error struct {
	Kind ErrorKind
	Path string // заполнено только для KindFileRead
	Err  error
}

var (
	ErrInsufficientArguments = &Error{Kind: KindInsufficientArguments}
	ErrFileRead              = &Error{Kind: KindFileRead}
)

func (e *Error) Error() string {
	switch {
	case e.Kind == KindInsufficientArguments && e.Err == nil:
		return "not enough arguments"
	case e.Kind == KindInsufficientArguments:
		return fmt.Sprintf("not enough arguments: %v", e.Err)
	case e.Path != "" && e.Err != nil && !hasPathError(e.Err):
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// *fs.PathError already names the file
func hasPathError(err error) bool {
	var pe *fs.PathError
	return errors.As(err, &pe)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrFileRead) works for every cause
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewFileReadError wraps an I/O or decoding failure for the given path
func NewFileReadError(path string, cause error) *Error {
	return &Error{Kind: KindFileRead, Path: path, Err: cause}
}

// KindOf returns the kind of the first *Error in the chain, or 0 if there is none
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
