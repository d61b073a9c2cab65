package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// CustomField is an admin-defined key/value pair rendered generically on the
// storefront, in insertion order.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Product struct {
	ID           snowflake.ID                     `gorm:"primaryKey"`
	TenantID     snowflake.ID                     `gorm:"column:tenant_id;not null;index:idx_products_tenant_slug,priority:1"`
	Name         string                           `gorm:"type:text;not null"`
	Slug         string                           `gorm:"type:text;not null;index:idx_products_tenant_slug,priority:2"`
	Price        string                           `gorm:"type:text;not null"`
	Description  string                           `gorm:"type:text"`
	Images       datatypes.JSONSlice[string]      `gorm:"type:jsonb"`
	CoverIndex   int                              `gorm:"column:cover_index;not null;default:0"`
	CustomFields datatypes.JSONSlice[CustomField] `gorm:"column:custom_fields;type:jsonb"`
	BatchNumber  string                           `gorm:"column:batch_number;type:text"`
	ExpiryDate   string                           `gorm:"column:expiry_date;type:text"`
	Verified     bool                             `gorm:"not null;default:false"`
	CreatedAt    time.Time                        `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                        `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// Gallery returns the images in display order: the cover image first, the
// rest keeping their stored relative order. The stored order is never
// mutated.
func (p *Product) Gallery() []string {
	images := []string(p.Images)
	if len(images) == 0 {
		return nil
	}
	k := p.CoverIndex
	if k <= 0 || k >= len(images) {
		out := make([]string, len(images))
		copy(out, images)
		return out
	}

	out := make([]string, 0, len(images))
	out = append(out, images[k])
	out = append(out, images[:k]...)
	out = append(out, images[k+1:]...)
	return out
}
