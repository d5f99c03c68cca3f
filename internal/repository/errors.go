package repository

import (
	"errors"

	"github.com/lshigami/quizmaster/internal/apperr"
	"gorm.io/gorm"
)

// notFound turns gorm's sentinel into a typed NotFound error and wraps any
// other failure as internal.
func notFound(err error, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s %d not found", entity, id)
	}
	return apperr.Internal(err, "loading %s %d", entity, id)
}
