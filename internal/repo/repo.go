package repo

import (
	"context"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/repo/pgdb"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	"github.com/Egor213/LogiWatch/pkg/postgres"
)

type Log interface {
	AppendRecords(ctx context.Context, records []domain.LogRecord) error
	QueryRecords(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogRecord, error)
}

type Alert interface {
	AppendAlert(ctx context.Context, a domain.Alert) (int, error)
	ListAlerts(ctx context.Context, filter domain.AlertFilter, limit int) ([]domain.Alert, error)
	MarkRead(ctx context.Context, id int) error
}

type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// TxManager runs fn inside one transaction; repositories called with the
// derived ctx join it.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repositories struct {
	Log
	Alert
	Settings
	Tx TxManager
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log:      pgdb.NewLogRepo(pg),
		Alert:    pgdb.NewAlertRepo(pg),
		Settings: pgdb.NewSettingsRepo(pg),
		Tx:       pg.TrManager,
	}
}
