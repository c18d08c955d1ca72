package tokenx

import (
	"errors"
	"fmt"
)

// FieldUserID is the wire name of the only field a record cannot omit.
const FieldUserID = "user_id"

var (
	ErrMissingField     = errors.New("tokenx: missing required field")
	ErrMalformedToken   = errors.New("tokenx: malformed token")
	ErrInvalidSignature = errors.New("tokenx: invalid token signature")
)

// MissingFieldError reports a record that cannot be encoded because a
// required field is absent. It matches ErrMissingField with errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("tokenx: missing required field %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
