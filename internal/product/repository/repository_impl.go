package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/storefrontlabs/vitrina/internal/product/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repository) FindByID(ctx context.Context, tenantID, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindFirstBySlug(ctx context.Context, tenantID snowflake.ID, slug string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND slug = ?", tenantID, slug).
		Order("created_at ASC, id ASC").
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *repository) List(ctx context.Context, tenantID snowflake.ID, search string, offset, limit int) ([]domain.Product, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("tenant_id = ?", tenantID)

	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("tenant_id = ? AND id = ?", product.TenantID, product.ID).
		Select("name", "slug", "price", "description", "images", "cover_index",
			"custom_fields", "batch_number", "expiry_date", "verified", "updated_at").
		Updates(product).Error
}

func (r *repository) Delete(ctx context.Context, tenantID, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.Product{}).Error
}
