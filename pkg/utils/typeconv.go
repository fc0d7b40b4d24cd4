package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseDecimal parses a raw cell into a float64. Thousands separators and
// surrounding whitespace are tolerated because monetary columns arrive as
// display-formatted text in the source extracts.
func ParseDecimal(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseInt parses a raw cell into an int64, accepting decimal-formatted
// values with a zero fraction (pandas-style "5.0" exports).
func ParseInt(raw string) (int64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// ParseDate parses a raw cell using the declared layout, falling back to a
// couple of common layouts seen across report vintages.
func ParseDate(raw, layout string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	layouts := []string{layout, "01-02-06", "01-02-2006", "2006-01-02"}
	for _, l := range layouts {
		if l == "" {
			continue
		}
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseBool maps the boolean spellings that appear in the extracts.
func ParseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	default:
		return false, false
	}
}
