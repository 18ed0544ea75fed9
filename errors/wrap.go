package errors

import stderrors "errors"

// Thin re-exports so callers don't need both this package and the standard
// library under an alias.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
