// predicates.go — stdlib-aligned queries over flub snapshots.
//
// Interop-first: errors.As walks both Unwrap() error and Unwrap() []error, so
// snapshots are found through fmt.Errorf("%w") and errors.Join alike.
package flub

import "errors"

// CodeOf returns the code of the first flub snapshot in err's chain, or
// CodeOK if there is none.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeOK
}

// HasCode reports whether err's chain contains a flub snapshot with code.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &Error{Code: code})
}

// IsBad reports whether err's chain holds a snapshot of the
// construction-failed sentinel.
func IsBad(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Bad
}
