package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

type ProfileRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProfileRepository(writerDB, readerDB *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.readerDB.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// GetByEmail reads from the writer so that a sign-in right after sign-up
// does not miss the new row on a lagging replica.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.writerDB.WithContext(ctx).First(&profile, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}
