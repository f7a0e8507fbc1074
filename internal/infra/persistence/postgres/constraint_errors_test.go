package postgres

import (
	"testing"

	domainerrors "github.com/riaj03/savyo/internal/domain/errors"
	"github.com/riaj03/savyo/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`insert or update on table "deals" violates foreign key constraint "fk_deals_store" (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}

func TestDealReferenceError(t *testing.T) {
	storeErr := errors.New(`insert or update on table "deals" violates foreign key constraint "fk_deals_store" (SQLSTATE 23503)`)
	assert.ErrorIs(t, dealReferenceError(storeErr), repository.ErrStoreNotFound)

	categoryErr := errors.New(`insert or update on table "deals" violates foreign key constraint "fk_deals_category" (SQLSTATE 23503)`)
	assert.ErrorIs(t, dealReferenceError(categoryErr), repository.ErrCategoryNotFound)

	// An unnamed violation degrades to a neutral validation error.
	unnamed := errors.New("ERROR: foreign key violation (SQLSTATE 23503)")
	assert.ErrorIs(t, dealReferenceError(unnamed), domainerrors.ErrValidationFailed)
}
