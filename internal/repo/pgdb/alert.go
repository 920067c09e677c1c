package pgdb

import (
	"context"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/Egor213/LogiWatch/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var alertColumns = []string{
	"id", "tipo", "nivel", "usuario", "ip", "url", "data", "hora",
	"mensagem", "detalhes", `"timestamp"`, "lido",
}

type AlertRepo struct {
	*postgres.Postgres
}

func NewAlertRepo(pg *postgres.Postgres) *AlertRepo {
	return &AlertRepo{pg}
}

func (r *AlertRepo) AppendAlert(ctx context.Context, a domain.Alert) (int, error) {
	sql, args, err := r.Builder.
		Insert("alertas").
		Columns(alertColumns[1:]...).
		Values(string(a.Kind), string(a.Severity), a.User, a.IP, a.URL, a.Date, a.Time,
			a.Summary, a.Detail, a.CreatedAt, a.Read).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *AlertRepo) ListAlerts(ctx context.Context, filter domain.AlertFilter, limit int) ([]domain.Alert, error) {
	sql, args, err := r.listQuery(filter, limit).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	alerts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Alert])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return alerts, nil
}

func (r *AlertRepo) listQuery(filter domain.AlertFilter, limit int) sq.SelectBuilder {
	query := r.Builder.
		Select(alertColumns...).
		From("alertas").
		OrderBy(`"timestamp" DESC`)

	if conds := BuildAlertQueryFilters(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return query
}

func (r *AlertRepo) MarkRead(ctx context.Context, id int) error {
	sql, args, err := r.Builder.
		Update("alertas").
		Set("lido", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}
