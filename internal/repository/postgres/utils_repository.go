package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/itinerary-service/internal/domain"
)

// SQLSTATE codes of a relation or column that does not exist
const (
	sqlStateUndefinedTable  = "42P01"
	sqlStateUndefinedColumn = "42703"
)

// Форматы, в которых даты и время отдаются клиенту
const (
	// dateFormat - календарная дата, YYYY-MM-DD
	dateFormat = `'YYYY-MM-DD'`
	// timeFormat - время начала, HH:MM:SS
	timeFormat = `'HH24:MI:SS'`
	// createdAtFormat - фиксированная ширина, чтобы строки сравнивались как время
	createdAtFormat = `'YYYY-MM-DD"T"HH24:MI:SS.US"Z"'`
)

// classifyError maps a missing relation or column to domain.ErrRelationUnavailable.
// Both the pgx and the lib/pq error types are recognized.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if isRelationMissing(err) {
		return errors.Join(domain.ErrRelationUnavailable, err)
	}
	return err
}

func isRelationMissing(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUndefinedTable || pgErr.Code == sqlStateUndefinedColumn
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == sqlStateUndefinedTable || code == sqlStateUndefinedColumn
	}

	return false
}
