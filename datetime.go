package repoabs

import (
	"fmt"
	"strings"
	"time"
)

// Token-pattern date formatting. Patterns use the familiar database tokens
// (YYYY-MM-DD HH:mm:ss) and are translated to Go reference layouts, so that
// repository code and SQL DATE_FORMAT masks can share one notation.

// Longest tokens first: YYYY must win over YY.
var _layoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
	// Fractional seconds, valid only right after the decimal point,
	// e.g. "HH:mm:ss.SSS".
	"SSS", "000",
)

const (
	PatternDate     = "YYYY-MM-DD"
	PatternTime     = "HH:mm:ss"
	PatternDateTime = "YYYY-MM-DD HH:mm:ss"
)

// GoLayout translates a token pattern into a Go time layout.
// Example: "YYYY-MM-DD HH:mm:ss" → "2006-01-02 15:04:05".
func GoLayout(pattern string) string {
	return _layoutReplacer.Replace(pattern)
}

// FormatDateTime renders t using a token pattern.
func FormatDateTime(t time.Time, pattern string) string {
	return t.Format(GoLayout(pattern))
}

// ParseDateTime parses value against a token pattern in UTC.
func ParseDateTime(value, pattern string) (time.Time, error) {
	return ParseDateTimeIn(value, pattern, time.UTC)
}

// ParseDateTimeIn parses value against a token pattern in the given location.
func ParseDateTimeIn(value, pattern string, loc *time.Location) (time.Time, error) {
	ret, err := time.ParseInLocation(GoLayout(pattern), value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse '%s' with pattern '%s': %w", value, pattern, err)
	}

	return ret, nil
}
