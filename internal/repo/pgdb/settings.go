package pgdb

import (
	"context"

	"github.com/Egor213/LogiWatch/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/Egor213/LogiWatch/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
)

type SettingsRepo struct {
	*postgres.Postgres
}

func NewSettingsRepo(pg *postgres.Postgres) *SettingsRepo {
	return &SettingsRepo{pg}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	sql, args, err := r.Builder.
		Select("valor").
		From("configuracoes").
		Where(sq.Eq{"chave": key}).
		ToSql()
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	var value string
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&value)
	if errorsUtils.IsNoRows(err) {
		return "", repoerrs.ErrNotFound
	}
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}
	return value, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	sql, args, err := r.upsertQuery(key, value).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (r *SettingsRepo) upsertQuery(key, value string) sq.InsertBuilder {
	return r.Builder.
		Insert("configuracoes").
		Columns("chave", "valor").
		Values(key, value).
		Suffix("ON CONFLICT (chave) DO UPDATE SET valor = EXCLUDED.valor")
}
