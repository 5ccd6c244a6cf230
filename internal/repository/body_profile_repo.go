package repository

import (
	"context"

	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BodyProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error)
	Save(ctx context.Context, profile *model.BodyProfile) error
}

type bodyProfileRepository struct {
	db *gorm.DB
}

func NewBodyProfileRepository(db *gorm.DB) BodyProfileRepository {
	return &bodyProfileRepository{db: db}
}

func (r *bodyProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error) {
	var profile model.BodyProfile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *bodyProfileRepository) Save(ctx context.Context, profile *model.BodyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
