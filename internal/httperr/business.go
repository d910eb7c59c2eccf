package httperr

import "errors"

// BusinessError marks a failure the caller is expected to handle by code
// rather than by message. Handlers map these to a 4xx payload while plain
// errors fall through to a generic 500.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness wraps a stable machine-readable code, e.g. "orphaned_credential".
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given business code, unwrapping
// along the way.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
