package parser

import (
	"strings"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
)

var dateLayouts = []string{
	"2006-1-2",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

var timeLayouts = []string{
	"15:04:05",
	"3:04:05 PM",
	"15:04",
	"3:04 PM",
}

// NormalizeDate rewrites s as YYYY-MM-DD using the first layout that parses.
// Unrecognized input is returned as is.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(domain.DateLayout)
		}
	}
	return s
}

// NormalizeTime rewrites s as HH:MM:SS after dropping a ",mmm" suffix.
// Unrecognized input is returned without the suffix.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	upper := strings.ToUpper(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format(domain.TimeLayout)
		}
	}
	return s
}
