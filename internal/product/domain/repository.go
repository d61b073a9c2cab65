package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, tenantID, id snowflake.ID) (*Product, error)
	// FindFirstBySlug returns the oldest product carrying slug. Slugs are not
	// unique; identically named products collide and the first match wins.
	FindFirstBySlug(ctx context.Context, tenantID snowflake.ID, slug string) (*Product, error)
	List(ctx context.Context, tenantID snowflake.ID, search string, offset, limit int) ([]Product, int64, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, tenantID, id snowflake.ID) error
}
