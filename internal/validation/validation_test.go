package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a4"))
	assert.False(t, IsDigits("12.4"))
	assert.False(t, IsDigits("-12"))
}

func TestIsMobileNumber(t *testing.T) {
	assert.True(t, IsMobileNumber("9876543210"))
	assert.True(t, IsMobileNumber("6000000000"))
	assert.False(t, IsMobileNumber("5876543210"), "leading digit below 6")
	assert.False(t, IsMobileNumber("987654321"), "nine digits")
	assert.False(t, IsMobileNumber("98765432100"), "eleven digits")
	assert.False(t, IsMobileNumber("987654321a"))
}

func TestIsPositiveNumeric(t *testing.T) {
	assert.True(t, IsPositiveNumeric("0.001"))
	assert.True(t, IsPositiveNumeric("42"))
	assert.False(t, IsPositiveNumeric("0"))
	assert.False(t, IsPositiveNumeric("-1.5"))
	assert.False(t, IsPositiveNumeric(""))
	assert.False(t, IsPositiveNumeric("abc"))
}

func TestIsNonNegativeNumeric(t *testing.T) {
	assert.True(t, IsNonNegativeNumeric("0"))
	assert.True(t, IsNonNegativeNumeric("3.12"))
	assert.False(t, IsNonNegativeNumeric("-0.01"))
	assert.False(t, IsNonNegativeNumeric(""))
}
