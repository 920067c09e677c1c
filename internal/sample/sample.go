// Package sample synthesizes demo log records for an empty installation.
package sample

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
)

const (
	DefaultCount = 100
	spanDays     = 7
)

var (
	users      = []string{"admin", "joao.silva", "maria.santos", "carlos.oliveira", "ana.pereira"}
	urls       = []string{"/app/dashboard", "/app/users", "/app/reports", "/app/settings", "/api/data", "/api/users", "/api/auth/login", "/api/auth/logout", "/app/products", "/app/orders"}
	levels     = []string{"INFO", "WARN", "ERROR", "DEBUG"}
	categories = []string{"Security", "Authentication", "Database", "Application", "System"}
	servers    = []string{"jboss1", "jboss2", "jboss3"}
	operations = []domain.Operation{domain.OpLogin, domain.OpLogout, domain.OpView, domain.OpUpdate, domain.OpDelete}
	// one in five fails
	statuses   = []domain.Status{domain.StatusSuccess, domain.StatusFailed, domain.StatusSuccess, domain.StatusSuccess, domain.StatusSuccess}
)

func pick[T any](r *rand.Rand, s []T) T {
	return s[r.IntN(len(s))]
}

func ip(r *rand.Rand) string {
	if r.IntN(3) == 0 {
		return fmt.Sprintf("10.0.0.%d", 1+r.IntN(9))
	}
	return fmt.Sprintf("192.168.1.%d", 1+r.IntN(19))
}

// Generate returns n records spread over the spanDays before now, newest
// first. A nil r uses a time-seeded source.
func Generate(n int, now time.Time, r *rand.Rand) []domain.LogRecord {
	if n <= 0 {
		n = DefaultCount
	}
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	}

	out := make([]domain.LogRecord, n)
	for i := range out {
		at := now.Add(-time.Duration(r.Int64N(int64(spanDays * 24 * time.Hour))))

		rec := domain.LogRecord{
			Date:       at.Format(domain.DateLayout),
			Time:       at.Format(domain.TimeLayout),
			Level:      pick(r, levels),
			Category:   pick(r, categories),
			Server:     pick(r, servers),
			Thread:     fmt.Sprintf("Thread-%d", 1+r.IntN(100)),
			User:       pick(r, users),
			IP:         ip(r),
			URL:        pick(r, urls),
			Operation:  pick(r, operations),
			Status:     pick(r, statuses),
			IngestedAt: now,
		}
		rec.Message = message(rec)
		out[i] = rec
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Newer(out[j])
	})
	return out
}

func message(r domain.LogRecord) string {
	switch r.Operation {
	case domain.OpLogin:
		if r.Status == domain.StatusSuccess {
			return fmt.Sprintf("User %s successfully logged in from IP=%s", r.User, r.IP)
		}
		return fmt.Sprintf("Failed login attempt for user %s from IP=%s", r.User, r.IP)
	case domain.OpLogout:
		return fmt.Sprintf("User %s logged out", r.User)
	case domain.OpView:
		return fmt.Sprintf("User %s accessed URL=%s from IP=%s", r.User, r.URL, r.IP)
	case domain.OpUpdate:
		return fmt.Sprintf("User %s updated data at URL=%s from IP=%s", r.User, r.URL, r.IP)
	default:
		return fmt.Sprintf("User %s deleted data at URL=%s from IP=%s", r.User, r.URL, r.IP)
	}
}
