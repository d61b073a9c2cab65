package domain

import (
	"context"
	"errors"

	productdomain "github.com/storefrontlabs/vitrina/internal/product/domain"
	themedomain "github.com/storefrontlabs/vitrina/internal/theme/domain"
)

// ErrNotFound is the only error shoppers ever see. Unknown tenants, unknown
// products and internal read failures all collapse into it.
var ErrNotFound = errors.New("page not found")

// Page is everything a product page render needs.
type Page struct {
	TenantSlug string                 `json:"tenantSlug"`
	Product    *productdomain.Response `json:"product"`
	Theme      themedomain.Record      `json:"theme"`
}

type Service interface {
	// ProductPage assembles the public page for tenantSlug/productSlug.
	ProductPage(ctx context.Context, tenantSlug, productSlug string) (*Page, error)
}
