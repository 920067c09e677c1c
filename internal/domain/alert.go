package domain

import "time"

type AlertKind string

const (
	AlertLoginFailure  AlertKind = "LOGIN_FAILURE"
	AlertOffHours      AlertKind = "OFF_HOURS"
	AlertRestrictedURL AlertKind = "RESTRICTED_URL"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

type Alert struct {
	ID        int       `db:"id" json:"id"`
	Kind      AlertKind `db:"tipo" json:"kind"`
	Severity  Severity  `db:"nivel" json:"severity"`
	User      string    `db:"usuario" json:"user"`
	IP        string    `db:"ip" json:"ip"`
	URL       string    `db:"url" json:"url"`
	Date      string    `db:"data" json:"date"`
	Time      string    `db:"hora" json:"time"`
	Summary   string    `db:"mensagem" json:"summary"`
	Detail    string    `db:"detalhes" json:"detail"`
	CreatedAt time.Time `db:"timestamp" json:"created_at"`
	Read      bool      `db:"lido" json:"read"`
}

// ReadState selects alerts by their read flag.
type ReadState string

const (
	ReadAny    ReadState = ""
	ReadUnread ReadState = "unread"
	ReadOnly   ReadState = "read"
)

type AlertFilter struct {
	Severity Severity
	Kind     AlertKind
	Read     ReadState
}

// Match applies the filter in memory, mirroring the store query.
func (f AlertFilter) Match(a Alert) bool {
	if f.Severity != "" && f.Severity != a.Severity {
		return false
	}
	if f.Kind != "" && f.Kind != a.Kind {
		return false
	}
	switch f.Read {
	case ReadUnread:
		return !a.Read
	case ReadOnly:
		return a.Read
	}
	return true
}
