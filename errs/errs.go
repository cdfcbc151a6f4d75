// Package errs defines the error taxonomy shared by the game core.
// Every error carries a Kind and a user-facing message.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a game error.
type Kind int

const (
	// KindValidation covers bad input shape or range (out-of-bounds
	// coordinates, unknown enum values in payloads).
	KindValidation Kind = iota
	// KindState covers operations invalid for the current state
	// (attacking outside a battle, acting out of turn).
	KindState
	// KindNotFound covers unknown id lookups (monster, task, skill,
	// NPC, shop item).
	KindNotFound
	// KindResource covers insufficient mp/gold/stat points and active
	// cooldowns.
	KindResource
	// KindPersistence covers an unavailable store or a corrupt save.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindState:
		return "state"
	case KindNotFound:
		return "not_found"
	case KindResource:
		return "resource"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is a classified game error with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new Error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind of err, or ok=false when err carries none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is a game error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
