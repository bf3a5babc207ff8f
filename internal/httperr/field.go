package httperr

import "errors"

// FieldError adalah kegagalan validasi pada satu field, dipakai lapisan
// use case agar handler bisa memetakannya ke respons 422.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func ErrField(field, message string) error {
	return FieldError{Field: field, Message: message}
}

func AsField(err error) (FieldError, bool) {
	var fe FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return FieldError{}, false
}
