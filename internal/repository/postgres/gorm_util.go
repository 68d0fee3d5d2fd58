package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/rent-dashboard/internal/repository"
)

// ownerScope returns a query restricted to the rows of one owner.
func ownerScope(db *gorm.DB, ctx context.Context, ownerID string) (*gorm.DB, error) {
	if ownerID == "" {
		return nil, repository.ErrMissingOwner
	}

	return db.WithContext(ctx).Where("user_id = ?", ownerID), nil
}

// translateError maps gorm sentinel errors to repository errors.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}
