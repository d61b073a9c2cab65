package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	CreateTenant(ctx context.Context, tenant *Tenant) error
	CreateSlug(ctx context.Context, mapping *TenantSlug) error
	FindByID(ctx context.Context, id snowflake.ID) (*Tenant, error)
	FindByOwner(ctx context.Context, ownerUserID snowflake.ID) (*Tenant, error)
	FindSlug(ctx context.Context, slug string) (*TenantSlug, error)
	UpdateContact(ctx context.Context, id snowflake.ID, contactNumber string) error
}
