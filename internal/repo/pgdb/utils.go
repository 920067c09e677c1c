package pgdb

import (
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

func BuildLogQueryFilters(filter repotypes.LogFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if isSet(filter.Date) {
		conds = append(conds, sq.Eq{"data": filter.Date})
	}
	if isSet(filter.Level) {
		conds = append(conds, sq.Eq{"nivel": filter.Level})
	}
	if isSet(filter.Status) {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	if filter.User != "" {
		conds = append(conds, sq.ILike{"usuario": "%" + filter.User + "%"})
	}
	if filter.IP != "" {
		conds = append(conds, sq.ILike{"ip": "%" + filter.IP + "%"})
	}
	if filter.URL != "" {
		conds = append(conds, sq.ILike{"url": "%" + filter.URL + "%"})
	}

	limit := uint64(repotypes.DefaultLogLimit)
	if filter.Limit > 0 {
		limit = uint64(filter.Limit)
	}

	return conds, limit
}

func BuildAlertQueryFilters(filter domain.AlertFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Severity != "" {
		conds = append(conds, sq.Eq{"nivel": string(filter.Severity)})
	}
	if filter.Kind != "" {
		conds = append(conds, sq.Eq{"tipo": string(filter.Kind)})
	}
	switch filter.Read {
	case domain.ReadUnread:
		conds = append(conds, sq.Eq{"lido": false})
	case domain.ReadOnly:
		conds = append(conds, sq.Eq{"lido": true})
	}

	return conds
}

func isSet(v string) bool {
	return v != "" && v != repotypes.AllValues
}
