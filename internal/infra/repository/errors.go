package repository

import (
	"errors"

	"facility-booking/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// psql builds queries with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func wrapQueryErr(msg string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	case isPgErrCode(err, pgErrCodeUniqueViolation):
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	case isPgErrCode(err, pgErrCodeForeignKeyViolation):
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
	default:
		return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
	}
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
