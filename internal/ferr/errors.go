// Package ferr defines the typed error kinds the analysis pipeline fails
// fast with (spec §7). Every stage returns one of these instead of a bare
// fmt.Errorf so callers can branch on Kind without string matching.
package ferr

import "fmt"

// Kind identifies one of the four error categories the core recognizes.
type Kind string

const (
	// BadInput covers missing/inconsistent entity-set fields: unknown
	// support type, unknown material tag, zero-length member, a load not
	// lying on any member, a roller at an unsupported angle.
	BadInput Kind = "BadInput"

	// UnderDetermined means K v = R was singular after applying supports
	// — insufficient restraints or a mechanism.
	UnderDetermined Kind = "UnderDetermined"

	// NumericalIssue means a downstream formula produced NaN/Inf, e.g. a
	// buckling Phi^2 - Lambda^2 < 0 from bad section data.
	NumericalIssue Kind = "NumericalIssue"

	// UnsupportedConfiguration means a profile/grade/masonry type has no
	// entry in the material tables.
	UnsupportedConfiguration Kind = "UnsupportedConfiguration"
)

// Error is a typed, fail-fast analysis error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around an existing error.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
