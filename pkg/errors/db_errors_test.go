package custom_error

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDBErrorTypedCodes(t *testing.T) {
	unique := WrapDBError("users_username_key", "23505")
	var uniqueErr *UniqueViolationError
	assert.True(t, errors.As(unique, &uniqueErr))
	assert.True(t, IsConflict(unique))

	fk := WrapDBError("material type \"MS\"", "23503")
	var fkErr *ForeignKeyViolationError
	assert.True(t, errors.As(fk, &fkErr))
	assert.True(t, IsConflict(fk))
	assert.Contains(t, fk.Error(), "still referenced by other resources")
}

func TestWrapDBErrorUnknownCodeIsNotConflict(t *testing.T) {
	err := WrapDBError("deadlock detected", "40P01")
	assert.False(t, IsConflict(err))
}
