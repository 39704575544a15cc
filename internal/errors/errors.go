// Package errors is dedupebak's error-construction surface: a thin
// wrapper over github.com/pkg/errors trimmed to the handful of
// constructors the rest of the module actually calls, plus the §7
// taxonomy in category.go. Grounded on restic/internal/errors, which
// wraps the same library for the same "don't let this package show up in
// stack traces" reason; unlike restic's copy, this one drops Is/Join/
// Unwrap and the fatalError mechanism, neither of which any call site in
// this repo uses — every operation that fails returns an error straight
// to cmd/dedupebak, which already treats any non-nil error as exit 1.
package errors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// New creates a new error based on message. Wrapped so that this package
// does not appear in the stack trace.
var New = errors.New

// Errorf creates an error based on a format string and values. Wrapped so
// that this package does not appear in the stack trace.
var Errorf = errors.Errorf

// Wrap wraps an error retrieved from outside this package.
var Wrap = errors.Wrap

// Wrapf returns an error annotating err with the format specifier. If err
// is nil, Wrapf returns nil.
var Wrapf = errors.Wrapf

// WithStack annotates err with a stack trace at the point WithStack was
// called. If err is nil, WithStack returns nil.
var WithStack = errors.WithStack

// As finds the first error in err's tree that matches target, and if one
// is found, sets target to that error value and returns true.
func As(err error, tgt interface{}) bool { return stderrors.As(err, tgt) }
