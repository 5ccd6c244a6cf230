package repository

import (
	"context"

	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DesignRepository interface {
	Create(ctx context.Context, design *model.Design) error
	// FindByID is owner-scoped: it only ever returns a design belonging to
	// accountID.
	FindByID(ctx context.Context, id, accountID uuid.UUID) (*model.Design, error)
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]*model.Design, error)
	Save(ctx context.Context, design *model.Design) error
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}

type designRepository struct {
	db *gorm.DB
}

func NewDesignRepository(db *gorm.DB) DesignRepository {
	return &designRepository{db: db}
}

func (r *designRepository) Create(ctx context.Context, design *model.Design) error {
	return r.db.WithContext(ctx).Create(design).Error
}

func (r *designRepository) FindByID(ctx context.Context, id, accountID uuid.UUID) (*model.Design, error) {
	var design model.Design
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&design).Error; err != nil {
		return nil, err
	}
	return &design, nil
}

func (r *designRepository) FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]*model.Design, error) {
	var designs []*model.Design
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&designs).Error; err != nil {
		return nil, err
	}
	return designs, nil
}

func (r *designRepository) Save(ctx context.Context, design *model.Design) error {
	return r.db.WithContext(ctx).Save(design).Error
}

func (r *designRepository) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.Design{}, "id = ? AND account_id = ?", id, accountID).Error
}
