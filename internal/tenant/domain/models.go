package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Tenant is a store-owner account scope. All catalog and theme records hang
// off a tenant; nothing is shared between tenants.
type Tenant struct {
	ID            snowflake.ID `gorm:"primaryKey"`
	Slug          string       `gorm:"type:text;not null;uniqueIndex"`
	CompanyName   string       `gorm:"column:company_name;type:text;not null"`
	ContactNumber string       `gorm:"column:contact_number;type:text"`
	OwnerUserID   snowflake.ID `gorm:"column:owner_user_id;not null;uniqueIndex"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Tenant) TableName() string { return "tenants" }

// TenantSlug maps a public slug to the internal tenant id so storefront URLs
// never expose internal ids. Written alongside the tenant record with no
// transaction; the two can drift on partial failure.
type TenantSlug struct {
	Slug     string       `gorm:"primaryKey;type:text"`
	TenantID snowflake.ID `gorm:"column:tenant_id;not null"`
}

func (TenantSlug) TableName() string { return "tenant_slugs" }
