// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
)

// Wrap inspects a database error and maps it onto an [apperr.AppError].
//
//   - pgx.ErrNoRows becomes 404 for the named resource.
//   - A unique violation becomes 409.
//   - A foreign key violation becomes 404 (the referenced row is gone).
//   - A malformed key (e.g. a non-UUID id) becomes 404.
//   - Anything else becomes 500, with the action recorded in the cause.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists").WithCause(err)
		case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
			return apperr.NotFound(resource).WithCause(err)
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
