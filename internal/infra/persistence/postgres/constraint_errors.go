package postgres

import (
	"strings"

	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

// dealReferenceError maps a foreign-key violation on the deals table to the
// sentinel for the missing reference. Postgres names the constraint after the
// referencing column, so the message tells the two FKs apart.
func dealReferenceError(err error) error {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "store"):
		return repository.ErrStoreNotFound
	case strings.Contains(errMsg, "categor"):
		return repository.ErrCategoryNotFound
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("deal references a missing row")
	}
}
