package pgdb

import (
	"testing"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	"github.com/Egor213/LogiWatch/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPostgres() *postgres.Postgres {
	return &postgres.Postgres{Builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func TestBuildLogQueryFilters(t *testing.T) {
	testCases := []struct {
		name      string
		filter    repotypes.LogFilter
		wantConds int
		wantLimit uint64
	}{
		{
			name:      "empty filter uses default limit",
			filter:    repotypes.LogFilter{},
			wantConds: 0,
			wantLimit: repotypes.DefaultLogLimit,
		},
		{
			name:      "TODOS disables equality filters",
			filter:    repotypes.LogFilter{Date: "TODOS", Level: "TODOS", Status: "TODOS", Limit: 20},
			wantConds: 0,
			wantLimit: 20,
		},
		{
			name:      "every field set",
			filter:    repotypes.LogFilter{Date: "2024-01-15", Level: "ERROR", Status: "FAILED", User: "a", IP: "10.", URL: "/admin"},
			wantConds: 6,
			wantLimit: repotypes.DefaultLogLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds, limit := BuildLogQueryFilters(tc.filter)
			assert.Len(t, conds, tc.wantConds)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestLogRepo_SelectQuery(t *testing.T) {
	r := NewLogRepo(testPostgres())

	sql, args, err := r.selectQuery(repotypes.LogFilter{Date: "2024-01-15", Level: "TODOS", User: "ali"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM logs WHERE (data = $1 AND usuario ILIKE $2)")
	assert.Contains(t, sql, "ORDER BY data DESC, hora DESC LIMIT 1000")
	assert.Equal(t, []any{"2024-01-15", "%ali%"}, args)
}

func TestLogRepo_InsertQuery(t *testing.T) {
	r := NewLogRepo(testPostgres())
	rec := domain.NewRecord()
	rec.Date, rec.Time, rec.IngestedAt = "2024-01-15", "10:30:45", time.Now()

	sql, args, err := r.insertQuery([]domain.LogRecord{rec, rec}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO logs")
	assert.Contains(t, sql, "$26")
	assert.Len(t, args, 2*len(logColumns))
}

func TestAlertRepo_ListQuery(t *testing.T) {
	r := NewAlertRepo(testPostgres())

	sql, args, err := r.listQuery(domain.AlertFilter{
		Severity: domain.SeverityHigh,
		Read:     domain.ReadUnread,
	}, 100).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE (nivel = $1 AND lido = $2)")
	assert.Contains(t, sql, `ORDER BY "timestamp" DESC LIMIT 100`)
	assert.Equal(t, []any{"HIGH", false}, args)
}

func TestSettingsRepo_UpsertQuery(t *testing.T) {
	r := NewSettingsRepo(testPostgres())

	sql, args, err := r.upsertQuery(repotypes.KeyLogPath, "/var/log").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO configuracoes")
	assert.Contains(t, sql, "ON CONFLICT (chave) DO UPDATE SET valor = EXCLUDED.valor")
	assert.Equal(t, []any{"caminho_logs", "/var/log"}, args)
}
