package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogiWatch/internal/alert"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	alertmocks "github.com/Egor213/LogiWatch/internal/mocks/alert"
	repomocks "github.com/Egor213/LogiWatch/internal/mocks/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

func record(user, ip string, op domain.Operation, st domain.Status, date, tm string) domain.LogRecord {
	r := domain.NewRecord()
	r.User, r.IP, r.Operation, r.Status, r.Date, r.Time = user, ip, op, st, date, tm
	return r
}

func newEngine(t *testing.T, cfg alert.Config, rules domain.AlertRules, opts ...alert.Option) (*alert.Engine, *repomocks.MockAlert) {
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockAlert(ctrl)
	opts = append([]alert.Option{alert.WithClock(func() time.Time { return fixedNow })}, opts...)
	return alert.NewEngine(cfg, rules, store, metrics.NewTestCounters(), opts...), store
}

func TestEngine_LoginFailureThreshold(t *testing.T) {
	failed := record("alice", "10.0.0.1", domain.OpLogin, domain.StatusFailed, "2024-01-15", "10:00:00")
	old := failed
	old.Date = "2024-01-13"
	otherIP := failed
	otherIP.IP = "10.0.0.2"

	testCases := []struct {
		name   string
		recent []domain.LogRecord
		want   int
	}{
		{name: "two failures stay quiet", recent: []domain.LogRecord{failed, failed}, want: 0},
		{name: "third failure alerts", recent: []domain.LogRecord{failed, failed, failed}, want: 1},
		{name: "old failures do not count", recent: []domain.LogRecord{failed, failed, old}, want: 0},
		{name: "other ip does not count", recent: []domain.LogRecord{failed, otherIP, failed}, want: 0},
		{name: "yesterday still inside window", recent: []domain.LogRecord{failed, failed, func() domain.LogRecord {
			r := failed
			r.Date = "2024-01-14"
			return r
		}()}, want: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rules := domain.AlertRules{LoginFailureThreshold: 3}
			e, store := newEngine(t, alert.Config{}, rules)
			store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(1, nil).Times(tc.want)

			got := e.Evaluate(context.Background(), failed, tc.recent)

			require.Len(t, got, tc.want)
			if tc.want > 0 {
				assert.Equal(t, domain.AlertLoginFailure, got[0].Kind)
				assert.Equal(t, domain.SeverityHigh, got[0].Severity)
				assert.Equal(t, 1, got[0].ID)
				assert.Equal(t, fixedNow, got[0].CreatedAt)
			}
		})
	}
}

func TestEngine_OffHoursBoundary(t *testing.T) {
	testCases := []struct {
		time string
		want bool
	}{
		{"07:59:00", true},
		{"08:00:00", false},
		{"12:30:00", false},
		{"18:00:00", false},
		{"18:01:00", true},
		{"23:15", true},
		{"not-a-time", false},
	}

	for _, tc := range testCases {
		t.Run(tc.time, func(t *testing.T) {
			rules := domain.AlertRules{LoginFailureThreshold: 3, FlagOffHours: true}
			e, store := newEngine(t, alert.Config{}, rules)
			store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()

			rec := record("bob", "10.0.0.5", domain.OpView, domain.StatusSuccess, "2024-01-15", tc.time)
			got := e.Evaluate(context.Background(), rec, []domain.LogRecord{rec})

			if !tc.want {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, domain.AlertOffHours, got[0].Kind)
			assert.Equal(t, domain.SeverityMedium, got[0].Severity)
		})
	}
}

func TestEngine_OffHoursNeedsFlagAndSuccess(t *testing.T) {
	e, _ := newEngine(t, alert.Config{}, domain.AlertRules{LoginFailureThreshold: 3})
	rec := record("bob", "10.0.0.5", domain.OpView, domain.StatusSuccess, "2024-01-15", "03:00:00")
	assert.Empty(t, e.Evaluate(context.Background(), rec, nil))

	e, _ = newEngine(t, alert.Config{}, domain.AlertRules{LoginFailureThreshold: 3, FlagOffHours: true})
	rec.Status = domain.StatusFailed
	assert.Empty(t, e.Evaluate(context.Background(), rec, nil))
}

func TestEngine_RestrictedURLSeverity(t *testing.T) {
	testCases := []struct {
		name   string
		url    string
		status domain.Status
		want   domain.Severity
	}{
		{name: "success is high", url: "/admin/users", status: domain.StatusSuccess, want: domain.SeverityHigh},
		{name: "failure is medium", url: "/app/config/db", status: domain.StatusFailed, want: domain.SeverityMedium},
		{name: "unknown status is medium", url: "/api/admin", status: domain.StatusUnknown, want: domain.SeverityMedium},
		{name: "unrelated url", url: "/app/dashboard", status: domain.StatusSuccess},
		{name: "unknown url", url: domain.Unknown, status: domain.StatusSuccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rules := domain.AlertRules{LoginFailureThreshold: 3, RestrictedURLs: []string{"/admin", "/config"}}
			e, store := newEngine(t, alert.Config{}, rules)
			store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()

			rec := record("carol", "10.0.0.9", domain.OpView, tc.status, "2024-01-15", "10:00:00")
			rec.URL = tc.url
			got := e.Evaluate(context.Background(), rec, nil)

			if tc.want == "" {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, domain.AlertRestrictedURL, got[0].Kind)
			assert.Equal(t, tc.want, got[0].Severity)
			assert.Equal(t, tc.url, got[0].URL)
		})
	}
}

func TestEngine_DedupSameDay(t *testing.T) {
	rules := domain.AlertRules{LoginFailureThreshold: 3, RestrictedURLs: []string{"/admin"}}
	e, store := newEngine(t, alert.Config{}, rules)
	store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(1, nil).Times(2)

	rec := record("dave", "10.0.0.3", domain.OpView, domain.StatusSuccess, "2024-01-15", "10:00:00")
	rec.URL = "/admin"
	later := rec
	later.Time = "16:00:00"
	nextDay := rec
	nextDay.Date = "2024-01-16"

	assert.Len(t, e.Evaluate(context.Background(), rec, nil), 1)
	assert.Empty(t, e.Evaluate(context.Background(), later, nil))
	assert.Len(t, e.Evaluate(context.Background(), nextDay, nil), 1)
	assert.Len(t, e.Active(), 2)
}

func TestEngine_DedupWindow(t *testing.T) {
	rules := domain.AlertRules{LoginFailureThreshold: 3, RestrictedURLs: []string{"/admin"}}
	e, store := newEngine(t, alert.Config{DedupWindow: time.Hour}, rules)
	store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(1, nil).Times(2)

	rec := record("erin", "10.0.0.4", domain.OpView, domain.StatusSuccess, "2024-01-15", "10:00:00")
	rec.URL = "/admin"
	soon := rec
	soon.Time = "10:30:00"
	later := rec
	later.Time = "12:00:00"

	assert.Len(t, e.Evaluate(context.Background(), rec, nil), 1)
	assert.Empty(t, e.Evaluate(context.Background(), soon, nil))
	assert.Len(t, e.Evaluate(context.Background(), later, nil), 1)
}

func TestEngine_SinkSkippedWhenAlertsVisible(t *testing.T) {
	rules := domain.AlertRules{LoginFailureThreshold: 3, RestrictedURLs: []string{"/admin"}}
	ctrl := gomock.NewController(t)
	sink := alertmocks.NewMockSink(ctrl)
	e, store := newEngine(t, alert.Config{}, rules, alert.WithSink(sink))
	store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(5, nil).Times(2)

	rec := record("frank", "10.0.0.6", domain.OpView, domain.StatusSuccess, "2024-01-15", "10:00:00")
	rec.URL = "/admin"

	sink.EXPECT().AlertsVisible().Return(true)
	assert.Len(t, e.Evaluate(context.Background(), rec, nil), 1)

	other := rec
	other.User = "gina"
	sink.EXPECT().AlertsVisible().Return(false)
	sink.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a domain.Alert) error {
		assert.Equal(t, "gina", a.User)
		assert.Equal(t, 5, a.ID)
		return nil
	})
	assert.Len(t, e.Evaluate(context.Background(), other, nil), 1)
}

func TestEngine_StoreFailureKeepsAlertInMemory(t *testing.T) {
	rules := domain.AlertRules{LoginFailureThreshold: 3, RestrictedURLs: []string{"/admin"}}
	e, store := newEngine(t, alert.Config{}, rules)
	store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	rec := record("hank", "10.0.0.7", domain.OpView, domain.StatusSuccess, "2024-01-15", "10:00:00")
	rec.URL = "/admin"

	got := e.Evaluate(context.Background(), rec, nil)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].ID)
	assert.Len(t, e.Active(), 1)
}

func TestEngine_ActiveListIsCapped(t *testing.T) {
	rules := domain.AlertRules{LoginFailureThreshold: 3, RestrictedURLs: []string{"/admin"}}
	e, store := newEngine(t, alert.Config{MaxActive: 2}, rules)
	store.EXPECT().AppendAlert(gomock.Any(), gomock.Any()).Return(1, nil).Times(3)

	for _, user := range []string{"u1", "u2", "u3"} {
		rec := record(user, "10.0.0.8", domain.OpView, domain.StatusSuccess, "2024-01-15", "10:00:00")
		rec.URL = "/admin"
		e.Evaluate(context.Background(), rec, nil)
	}

	active := e.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "u3", active[0].User)
	assert.Equal(t, "u2", active[1].User)
}

func TestEngine_SeedAndMarkRead(t *testing.T) {
	e, store := newEngine(t, alert.Config{}, domain.DefaultAlertRules())
	stored := []domain.Alert{
		{ID: 2, Kind: domain.AlertOffHours, User: "ivy", Date: "2024-01-15"},
		{ID: 1, Kind: domain.AlertLoginFailure, User: "ivy", Date: "2024-01-14"},
	}
	store.EXPECT().ListAlerts(gomock.Any(), domain.AlertFilter{}, alert.DefaultMaxActive).Return(stored, nil)

	require.NoError(t, e.Seed(context.Background()))
	assert.True(t, e.MarkRead(2))
	assert.False(t, e.MarkRead(99))

	active := e.Active()
	require.Len(t, active, 2)
	assert.True(t, active[0].Read)
	assert.False(t, active[1].Read)

	// a seeded alert still suppresses its duplicate
	rec := record("ivy", "10.0.0.1", domain.OpView, domain.StatusSuccess, "2024-01-15", "22:00:00")
	assert.Empty(t, e.Evaluate(context.Background(), rec, nil))
}

func TestEngine_SetRulesIsolatesCaller(t *testing.T) {
	e, _ := newEngine(t, alert.Config{}, domain.DefaultAlertRules())
	rules := domain.AlertRules{LoginFailureThreshold: 5, RestrictedURLs: []string{"/x"}}

	e.SetRules(rules)
	rules.RestrictedURLs[0] = "/mutated"

	assert.Equal(t, []string{"/x"}, e.Rules().RestrictedURLs)
	assert.Equal(t, 5, e.Rules().LoginFailureThreshold)
}
