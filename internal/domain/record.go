package domain

import "time"

// Unknown is stored in every field that could not be extracted from a line.
const Unknown = "desconhecido"

type Operation string

const (
	OpLogin   Operation = "LOGIN"
	OpLogout  Operation = "LOGOUT"
	OpView    Operation = "VIEW"
	OpUpdate  Operation = "UPDATE"
	OpDelete  Operation = "DELETE"
	OpUnknown Operation = "UNKNOWN"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusUnknown Status = "UNKNOWN"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// LogRecord is one normalized log line. Date and Time hold DateLayout and
// TimeLayout strings unless the source value could not be parsed.
type LogRecord struct {
	Date       string    `db:"data" json:"date"`
	Time       string    `db:"hora" json:"time"`
	Level      string    `db:"nivel" json:"level"`
	Category   string    `db:"categoria" json:"category"`
	Server     string    `db:"servidor" json:"server"`
	Thread     string    `db:"thread" json:"thread"`
	Message    string    `db:"mensagem" json:"message"`
	User       string    `db:"usuario" json:"user"`
	IP         string    `db:"ip" json:"ip"`
	URL        string    `db:"url" json:"url"`
	Operation  Operation `db:"operacao" json:"operation"`
	Status     Status    `db:"status" json:"status"`
	IngestedAt time.Time `db:"timestamp" json:"ingested_at"`
}

// NewRecord returns a record with every inferred field set to Unknown.
func NewRecord() LogRecord {
	return LogRecord{
		Level:     "UNKNOWN",
		Category:  Unknown,
		Server:    Unknown,
		Thread:    Unknown,
		User:      Unknown,
		IP:        Unknown,
		URL:       Unknown,
		Operation: OpUnknown,
		Status:    StatusUnknown,
	}
}

// Moment combines Date and Time. ok is false when either was left unnormalized.
func (r LogRecord) Moment() (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Newer reports whether r sorts before o in display order, (date, time) descending.
func (r LogRecord) Newer(o LogRecord) bool {
	if r.Date != o.Date {
		return r.Date > o.Date
	}
	return r.Time > o.Time
}

// RawLine is a line read by the monitor, not yet parsed.
type RawLine struct {
	Source string
	Text   string
}
