package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"stockyard/internal/core/apperror"
)

// SQLSTATE codes surfaced by constraint enforcement.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// wrapWriteError maps a failed insert/update/delete to the error
// taxonomy. Foreign key violations become a 422 (the submitted reference
// does not exist), unique violations become a 422 duplicate (the
// validator races against concurrent writers, the constraint is the
// backstop). Everything else is a store failure.
func wrapWriteError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return apperror.NewForeignKey(entity, referencedField(pgErr.ConstraintName)).WithCause(err)
		case codeUniqueViolation:
			return apperror.NewDuplicate(entity, constrainedField(pgErr.ConstraintName)).WithCause(err)
		}
	}
	return apperror.NewDatabase("statement failed", err).WithDetail("entity", entity)
}

// wrapReadError maps a failed select to a store failure.
func wrapReadError(entity string, err error) error {
	return apperror.NewDatabase("query failed", err).WithDetail("entity", entity)
}

// referencedField extracts the referencing column from a foreign key
// constraint name of the form <table>_<column>_fkey.
func referencedField(constraint string) string {
	return fieldFromConstraint(constraint, "_fkey")
}

// constrainedField extracts the column from a unique constraint name of
// the form <table>_<column>_key.
func constrainedField(constraint string) string {
	return fieldFromConstraint(constraint, "_key")
}

func fieldFromConstraint(constraint, suffix string) string {
	name := strings.TrimSuffix(constraint, suffix)
	if i := strings.IndexByte(name, '_'); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}
