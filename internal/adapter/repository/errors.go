package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/mssola/mihi/internal/entity"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateWordError maps driver specific failures into word errors.
func translateWordError(err error) error {
	return translateDriverError(err, entity.ErrWordNotFound, entity.ErrDuplicateWord)
}

// translateTagError maps driver specific failures while writing tags. Tag
// ids are looked up beforehand, so a missing row can only be the word.
func translateTagError(err error) error {
	return translateDriverError(err, entity.ErrWordNotFound, entity.ErrDuplicateTag)
}

func translateDriverError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return duplicate
		case pgForeignKeyViolation:
			return notFound
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return duplicate
		case pgForeignKeyViolation:
			return notFound
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return duplicate
		case sqlite3.ErrConstraintForeignKey:
			return notFound
		}
	}
	return err
}
