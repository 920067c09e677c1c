package parser

import (
	"regexp"
	"strings"

	"github.com/Egor213/LogiWatch/internal/domain"
)

var (
	stampRe  = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}).*?(\d{2}:\d{2}:\d{2})(?:[,.]\d+)?`)
	bareIPRe = regexp.MustCompile(`\b(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\b`)
	pathRe   = regexp.MustCompile(`(?:/[\w.-]+){2,}`)
)

// Substring search order for the level of a loose line.
var looseLevels = []string{"INFO", "ERROR", "WARN", "DEBUG"}

// HasTimestamp reports whether ExtractLine would accept the line.
func HasTimestamp(line string) bool {
	return stampRe.MatchString(line)
}

// ExtractLine builds a minimal record from any line that embeds a
// YYYY-MM-DD ... HH:MM:SS timestamp.
func ExtractLine(line string) (domain.LogRecord, bool) {
	line = strings.TrimSpace(line)
	m := stampRe.FindStringSubmatch(line)
	if m == nil {
		return domain.LogRecord{}, false
	}

	r := domain.NewRecord()
	r.Date = NormalizeDate(m[1])
	r.Time = NormalizeTime(m[2])
	r.Message = line

	for _, lvl := range looseLevels {
		if strings.Contains(line, lvl) {
			r.Level = lvl
			break
		}
	}

	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "success"):
		r.Status = domain.StatusSuccess
	case strings.Contains(lower, "fail"), strings.Contains(lower, "error"):
		r.Status = domain.StatusFailed
	}

	if ip := bareIPRe.FindStringSubmatch(line); ip != nil {
		r.IP = ip[1]
	}
	if url := pathRe.FindString(line); url != "" {
		r.URL = url
	}

	return r, true
}

// afterStamp returns the text that follows the embedded timestamp, including
// its fractional seconds, so that digits like ",200" are not read as fields.
func afterStamp(line string) string {
	loc := stampRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[loc[1]:]
}
