package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/storefrontlabs/vitrina/internal/theme/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Find(ctx context.Context, tenantID snowflake.ID) (*domain.Theme, error) {
	var theme domain.Theme
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *repo) Save(ctx context.Context, theme *domain.Theme) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"styles", "updated_at"}),
		}).
		Create(theme).Error
}
