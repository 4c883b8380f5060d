package programmer

import (
	"fmt"
	"strings"
	"time"
)

// SequencePrefix builds the program-number prefix for a month and a user:
// two-digit year, two-digit month, uppercased initials ("2511AD" for
// November 2025 and user AD). Each prefix owns its own counter.
func SequencePrefix(t time.Time, initials string) string {
	return fmt.Sprintf("%02d%02d%s", t.Year()%100, int(t.Month()), strings.ToUpper(initials))
}

// FormatProgramNumber renders an issued counter value as the program number
// shown on the shop floor: prefix, dash, three-digit zero-padded value.
func FormatProgramNumber(prefix string, value int) string {
	return fmt.Sprintf("%s-%03d", prefix, value)
}
