package validators

import (
	"errors"
	"strings"

	"github.com/Egor213/LogiWatch/internal/domain"
)

var (
	ErrInvalidSeverity  = errors.New("invalid alert severity")
	ErrInvalidKind      = errors.New("invalid alert kind")
	ErrInvalidReadState = errors.New("invalid read state")
	ErrEmptyURLPrefix   = errors.New("restricted url prefixes must not be empty")
)

// AlertFilter parses query values into a filter. Values are case-insensitive
// and "" or "all" disables that criterion.
func AlertFilter(severity, kind, read string) (domain.AlertFilter, error) {
	var f domain.AlertFilter

	switch s := domain.Severity(upper(severity)); s {
	case "":
	case domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow:
		f.Severity = s
	default:
		return domain.AlertFilter{}, ErrInvalidSeverity
	}

	switch k := domain.AlertKind(upper(kind)); k {
	case "":
	case domain.AlertLoginFailure, domain.AlertOffHours, domain.AlertRestrictedURL:
		f.Kind = k
	default:
		return domain.AlertFilter{}, ErrInvalidKind
	}

	switch r := domain.ReadState(strings.ToLower(normalize(read))); r {
	case domain.ReadAny, domain.ReadUnread, domain.ReadOnly:
		f.Read = r
	default:
		return domain.AlertFilter{}, ErrInvalidReadState
	}

	return f, nil
}

func Rules(r domain.AlertRules) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, p := range r.RestrictedURLs {
		if strings.TrimSpace(p) == "" {
			return ErrEmptyURLPrefix
		}
	}
	return nil
}

func upper(s string) string {
	return strings.ToUpper(normalize(s))
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}
