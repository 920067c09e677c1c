package parser

import (
	"regexp"

	"github.com/Egor213/LogiWatch/internal/domain"
)

// Fields holds what Enrich could infer from a message.
type Fields struct {
	User      string
	IP        string
	URL       string
	Operation domain.Operation
	Status    domain.Status
}

var (
	userRe = regexp.MustCompile(`(?i)user[=:]\s*['"]?([\w.@-]+)['"]?`)
	ipRe   = regexp.MustCompile(`(?i)(?:IP|address|from)[=:]\s*['"]?(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})['"]?`)
	urlRe  = regexp.MustCompile(`(?i)(?:URL|uri|path)[=:]\s*['"]?((?:/[\w.-]+)+)['"]?`)

	successRe = regexp.MustCompile(`(?i)success|successful|succeeded|ok|200`)
	failedRe  = regexp.MustCompile(`(?i)fail|failed|error|exception|denied|401|403|404|500`)
)

type operationRule struct {
	op domain.Operation
	re *regexp.Regexp
}

// Checked in order, first hit wins.
var operationRules = []operationRule{
	{domain.OpLogin, regexp.MustCompile(`(?i)login|authenticate|auth`)},
	{domain.OpLogout, regexp.MustCompile(`(?i)logout|signout`)},
	{domain.OpView, regexp.MustCompile(`(?i)GET|view|read|select`)},
	{domain.OpUpdate, regexp.MustCompile(`(?i)POST|PUT|update|modify`)},
	{domain.OpDelete, regexp.MustCompile(`(?i)DELETE|remove`)},
}

// Enrich infers user, ip, url, operation and status from free text.
func Enrich(message string) Fields {
	f := Fields{
		User:      domain.Unknown,
		IP:        domain.Unknown,
		URL:       domain.Unknown,
		Operation: domain.OpUnknown,
		Status:    domain.StatusUnknown,
	}

	if m := userRe.FindStringSubmatch(message); m != nil {
		f.User = m[1]
	}
	if m := ipRe.FindStringSubmatch(message); m != nil {
		f.IP = m[1]
	}
	if m := urlRe.FindStringSubmatch(message); m != nil {
		f.URL = m[1]
	}

	for _, rule := range operationRules {
		if rule.re.MatchString(message) {
			f.Operation = rule.op
			break
		}
	}

	switch {
	case successRe.MatchString(message):
		f.Status = domain.StatusSuccess
	case failedRe.MatchString(message):
		f.Status = domain.StatusFailed
	}

	return f
}

func (f Fields) apply(r *domain.LogRecord) {
	r.User = f.User
	r.IP = f.IP
	r.URL = f.URL
	r.Operation = f.Operation
	r.Status = f.Status
}

// mergeInto overwrites only the fields Enrich actually found.
func (f Fields) mergeInto(r *domain.LogRecord) {
	if f.User != domain.Unknown {
		r.User = f.User
	}
	if f.IP != domain.Unknown {
		r.IP = f.IP
	}
	if f.URL != domain.Unknown {
		r.URL = f.URL
	}
	if f.Operation != domain.OpUnknown {
		r.Operation = f.Operation
	}
	if f.Status != domain.StatusUnknown {
		r.Status = f.Status
	}
}
