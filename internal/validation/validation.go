package validation

import "github.com/shopspring/decimal"

// IsDigits reports whether s is non-empty and consists only of digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsMobileNumber reports whether s is a 10-digit Indian mobile number, i.e.
// digits only with a leading 6-9.
func IsMobileNumber(s string) bool {
	if len(s) != 10 || !IsDigits(s) {
		return false
	}
	return s[0] >= '6' && s[0] <= '9'
}

// IsPositiveNumeric reports whether s parses as a decimal greater than zero.
func IsPositiveNumeric(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// IsNonNegativeNumeric reports whether s parses as a decimal >= 0.
func IsNonNegativeNumeric(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return !d.IsNegative()
}
