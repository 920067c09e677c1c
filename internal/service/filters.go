package service

import (
	"strings"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
)

// filterRecords applies a LogFilter in memory with the store's semantics.
// records must be in display order.
func filterRecords(records []domain.LogRecord, f repotypes.LogFilter) []domain.LogRecord {
	limit := repotypes.DefaultLogLimit
	if f.Limit > 0 {
		limit = f.Limit
	}

	out := []domain.LogRecord{}
	for _, r := range records {
		if len(out) == limit {
			break
		}
		if !equalOrAll(f.Date, r.Date) || !equalOrAll(f.Level, r.Level) || !equalOrAll(f.Status, string(r.Status)) {
			continue
		}
		if !containsFold(r.User, f.User) || !containsFold(r.IP, f.IP) || !containsFold(r.URL, f.URL) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func equalOrAll(want, got string) bool {
	return want == "" || want == repotypes.AllValues || want == got
}

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
