package pgdb

import (
	"context"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/Egor213/LogiWatch/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// insertChunk keeps a multi-row insert under the 65535 bind parameter limit.
const insertChunk = 500

var logColumns = []string{
	"data", "hora", "nivel", "categoria", "servidor", "thread", "mensagem",
	"usuario", "ip", "url", "operacao", "status", `"timestamp"`,
}

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) AppendRecords(ctx context.Context, records []domain.LogRecord) error {
	db := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool)

	for start := 0; start < len(records); start += insertChunk {
		end := min(start+insertChunk, len(records))

		sql, args, err := r.insertQuery(records[start:end]).ToSql()
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		if _, err = db.Exec(ctx, sql, args...); err != nil {
			return errorsUtils.WrapPathErr(err)
		}
	}
	return nil
}

func (r *LogRepo) insertQuery(records []domain.LogRecord) sq.InsertBuilder {
	q := r.Builder.Insert("logs").Columns(logColumns...)
	for _, rec := range records {
		q = q.Values(rec.Date, rec.Time, rec.Level, rec.Category, rec.Server, rec.Thread,
			rec.Message, rec.User, rec.IP, rec.URL, string(rec.Operation), string(rec.Status),
			rec.IngestedAt)
	}
	return q
}

func (r *LogRepo) QueryRecords(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogRecord, error) {
	sql, args, err := r.selectQuery(filter).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogRecord])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return records, nil
}

func (r *LogRepo) selectQuery(filter repotypes.LogFilter) sq.SelectBuilder {
	conds, limit := BuildLogQueryFilters(filter)

	query := r.Builder.
		Select(logColumns...).
		From("logs").
		OrderBy("data DESC", "hora DESC").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	return query
}
