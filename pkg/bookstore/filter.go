package bookstore

import (
	"strconv"
	"strings"

	"bookshelf/pkg/models"
)

// Filter selects books for List. Empty fields impose no constraint.
//
// Reading and Finished hold the raw query value. The value is read as a
// number and compared with the stored flag as 0 or 1, so "1" selects true,
// "0" selects false and anything non-numeric selects nothing.
type Filter struct {
	Name     string
	Reading  string
	Finished string
}

func (f Filter) Match(b models.Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != "" && !flagMatches(b.Reading, f.Reading) {
		return false
	}
	if f.Finished != "" && !flagMatches(b.Finished, f.Finished) {
		return false
	}
	return true
}

func flagMatches(stored bool, raw string) bool {
	want, ok := coerceNumber(raw)
	if !ok {
		return false
	}
	if stored {
		return want == 1
	}
	return want == 0
}

// coerceNumber reads s the way a query string is read as a number:
// surrounding whitespace is ignored and a blank string is zero.
func coerceNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
