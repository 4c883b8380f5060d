package custom_error

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type UniqueViolationError struct {
	message string
	code    string
}

type ForeignKeyViolationError struct {
	message string
	code    string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

// WrapDBError maps postgres error codes onto typed errors handlers can match
// with errors.As. Codes: 23505 unique violation, 23503 foreign key violation.
func WrapDBError(message, code string) error {
	switch code {
	case "23505":
		return &UniqueViolationError{message: message, code: code}
	case "23503":
		return &ForeignKeyViolationError{message: "value is still referenced by other resources: " + message, code: code}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}

// FromPq converts a raw driver error into a typed one where a code is known.
func FromPq(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return WrapDBError(pqErr.Message, string(pqErr.Code))
	}
	return err
}

// IsConflict reports whether the error should surface as HTTP 409.
func IsConflict(err error) bool {
	var unique *UniqueViolationError
	var fk *ForeignKeyViolationError
	return errors.As(err, &unique) || errors.As(err, &fk)
}
