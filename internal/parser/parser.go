// Package parser turns raw application-server log lines into domain.LogRecord values.
//
// Parse tries a fixed, ordered list of line grammars and falls back to
// ExtractLine, which only needs an embedded timestamp. ParseTail is the
// lighter variant used while tailing files.
package parser

import (
	"regexp"
	"strings"

	"github.com/Egor213/LogiWatch/internal/domain"
)

type grammar struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) domain.LogRecord
}

// Order matters: the bracketed grammar also matches some lines the other two
// were meant for, so it must stay first.
var grammars = []grammar{
	{
		name: "bracketed",
		re:   regexp.MustCompile(`^\[(.*?)\]\s+\[(.*?)\]\s+\[(.*?)\]\s+\[(.*?)\]\s+(.*)`),
		extract: func(m []string) domain.LogRecord {
			r := domain.NewRecord()
			r.Date, r.Time, r.Level, r.Category, r.Message = m[1], m[2], m[3], m[4], m[5]
			return r
		},
	},
	{
		name: "server",
		re: regexp.MustCompile(
			`^(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2},\d{3})\s+\[(.*?)\]\s+\[(.*?)\]\s+\[(.*?)\]\s+-\s+(.*)`,
		),
		extract: func(m []string) domain.LogRecord {
			r := domain.NewRecord()
			r.Date, r.Time, r.Server, r.Level, r.Category, r.Message = m[1], m[2], m[3], m[4], m[5], m[6]
			return r
		},
	},
	{
		name: "thread",
		re: regexp.MustCompile(
			`^(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2},\d{3})\s+(\w+)\s+\[(.*?)\]\s+\((.*?)\)\s+(.*)`,
		),
		extract: func(m []string) domain.LogRecord {
			r := domain.NewRecord()
			r.Date, r.Time, r.Level, r.Category, r.Thread, r.Message = m[1], m[2], m[3], m[4], m[5], m[6]
			return r
		},
	},
}

// matchGrammar returns the record built by the first grammar that matches.
func matchGrammar(line string) (domain.LogRecord, string, bool) {
	for _, g := range grammars {
		m := g.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		r := g.extract(m)
		Enrich(r.Message).apply(&r)
		r.Date = NormalizeDate(r.Date)
		r.Time = NormalizeTime(r.Time)
		return r, g.name, true
	}
	return domain.LogRecord{}, "", false
}

// Parse decodes a line with the full grammar cascade, then the fallback
// extractor. ok is false when neither finds anything usable.
func Parse(line string) (domain.LogRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.LogRecord{}, false
	}
	if r, _, ok := matchGrammar(line); ok {
		return r, true
	}
	return ExtractLine(line)
}

// ParseTail is used for freshly tailed lines: the fallback extractor only,
// with fields found by Enrich taking precedence over its guesses.
func ParseTail(line string) (domain.LogRecord, bool) {
	r, ok := ExtractLine(line)
	if !ok {
		return r, false
	}
	Enrich(afterStamp(r.Message)).mergeInto(&r)
	return r, true
}
