package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
)

const (
	businessStart = 8
	businessEnd   = 18
)

type rule func(rec domain.LogRecord, recent []domain.LogRecord, rules domain.AlertRules, now time.Time) (domain.Alert, bool)

var ruleset = []rule{loginFailures, offHours, restrictedURL}

// loginFailures counts recent failed logins for the same user and IP. recent
// already holds rec.
func loginFailures(rec domain.LogRecord, recent []domain.LogRecord, rules domain.AlertRules, now time.Time) (domain.Alert, bool) {
	if rec.Operation != domain.OpLogin || rec.Status != domain.StatusFailed {
		return domain.Alert{}, false
	}

	since := now.Add(-24 * time.Hour).Format(domain.DateLayout)
	count := 0
	for _, r := range recent {
		if r.Operation == domain.OpLogin && r.Status == domain.StatusFailed &&
			r.User == rec.User && r.IP == rec.IP && r.Date >= since {
			count++
		}
	}
	if count < rules.LoginFailureThreshold {
		return domain.Alert{}, false
	}

	return domain.Alert{
		Kind:     domain.AlertLoginFailure,
		Severity: domain.SeverityHigh,
		User:     rec.User,
		IP:       rec.IP,
		Date:     rec.Date,
		Time:     rec.Time,
		Summary:  fmt.Sprintf("Multiple login failures (%d) for user %s from IP %s", count, rec.User, rec.IP),
		Detail:   fmt.Sprintf("Detected %d failed login attempts in the last 24 hours.", count),
	}, true
}

func offHours(rec domain.LogRecord, _ []domain.LogRecord, rules domain.AlertRules, _ time.Time) (domain.Alert, bool) {
	if !rules.FlagOffHours || rec.Status != domain.StatusSuccess {
		return domain.Alert{}, false
	}

	at, ok := timeOfDay(rec.Time)
	if !ok || (at >= businessStart*time.Hour && at <= businessEnd*time.Hour) {
		return domain.Alert{}, false
	}

	return domain.Alert{
		Kind:     domain.AlertOffHours,
		Severity: domain.SeverityMedium,
		User:     rec.User,
		IP:       rec.IP,
		URL:      rec.URL,
		Date:     rec.Date,
		Time:     rec.Time,
		Summary:  fmt.Sprintf("Off-hours access by user %s at %s", rec.User, rec.Time),
		Detail: fmt.Sprintf("User %s accessed the system from IP %s at %s, outside business hours (%dh-%dh).",
			rec.User, rec.IP, rec.Time, businessStart, businessEnd),
	}, true
}

func restrictedURL(rec domain.LogRecord, _ []domain.LogRecord, rules domain.AlertRules, _ time.Time) (domain.Alert, bool) {
	if rec.URL == domain.Unknown {
		return domain.Alert{}, false
	}

	for _, prefix := range rules.RestrictedURLs {
		if prefix == "" || !strings.Contains(rec.URL, prefix) {
			continue
		}

		severity := domain.SeverityMedium
		if rec.Status == domain.StatusSuccess {
			severity = domain.SeverityHigh
		}
		return domain.Alert{
			Kind:     domain.AlertRestrictedURL,
			Severity: severity,
			User:     rec.User,
			IP:       rec.IP,
			URL:      rec.URL,
			Date:     rec.Date,
			Time:     rec.Time,
			Summary:  fmt.Sprintf("Restricted URL %s accessed by user %s", rec.URL, rec.User),
			Detail: fmt.Sprintf("User %s accessed restricted URL %s from IP %s at %s. Status: %s",
				rec.User, rec.URL, rec.IP, rec.Time, rec.Status),
		}, true
	}
	return domain.Alert{}, false
}

// timeOfDay returns the offset from midnight of an HH:MM:SS or HH:MM value.
func timeOfDay(s string) (time.Duration, bool) {
	for _, layout := range []string{domain.TimeLayout, "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}
