package decode

import (
	"errors"
	"fmt"

	"github.com/mj1618/winlist/internal/plist"
)

var (
	// ErrMalformed means the description is not a property-list dictionary.
	ErrMalformed = errors.New("malformed window description")
	// ErrMissingField means a required key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrFieldCoercion means a key holds a value of an unusable type.
	ErrFieldCoercion = errors.New("field coercion failed")
)

// MissingFieldError names a required field absent from the document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// FieldCoercionError names a field whose value could not be converted.
type FieldCoercionError struct {
	Field string
	Kind  plist.Kind // kind of the offending leaf
	Err   error      // parse or range failure, if any
}

func (e *FieldCoercionError) Error() string {
	msg := fmt.Sprintf("cannot decode field %q from %s", e.Field, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FieldCoercionError) Is(target error) bool { return target == ErrFieldCoercion }

func (e *FieldCoercionError) Unwrap() error { return e.Err }
