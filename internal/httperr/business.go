package httperr

import "errors"

// BusinessError is a domain rule violation identified by a snake_case
// code (slot_already_booked, invalid_state, ...). Use cases return
// these; handlers map each code to a status and message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given business code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
