package service

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/storefrontlabs/vitrina/internal/observability/metrics"
	productdomain "github.com/storefrontlabs/vitrina/internal/product/domain"
	"github.com/storefrontlabs/vitrina/internal/storefront/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
	themedomain "github.com/storefrontlabs/vitrina/internal/theme/domain"
	"github.com/storefrontlabs/vitrina/pkg/tenantctx"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Tenants  tenantdomain.Service
	Products productdomain.Service
	Themes   themedomain.Service
	Metrics  *metrics.Metrics
}

type service struct {
	log      *zap.Logger
	tenants  tenantdomain.Service
	products productdomain.Service
	themes   themedomain.Service
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &service{
		log:      p.Log,
		tenants:  p.Tenants,
		products: p.Products,
		themes:   p.Themes,
		metrics:  p.Metrics,
	}
}

// ProductPage never leaks internals to the shopper: any failure past slug
// resolution is logged and reported as not found.
func (s *service) ProductPage(ctx context.Context, tenantSlug, productSlug string) (*domain.Page, error) {
	tenantID, err := s.tenants.ResolveSlug(ctx, tenantSlug)
	if err != nil {
		if !errors.Is(err, tenantdomain.ErrNotFound) {
			s.log.Error("tenant slug resolution failed",
				zap.String("tenant_slug", tenantSlug),
				zap.Error(err),
			)
		}
		s.metrics.RecordStorefrontView(ctx, tenantSlug, "not_found")
		return nil, domain.ErrNotFound
	}

	ctx = tenantctx.WithTenantID(ctx, int64(tenantID))

	product, err := s.products.GetBySlug(ctx, productSlug)
	if err != nil {
		if !errors.Is(err, productdomain.ErrNotFound) {
			s.log.Error("product lookup failed",
				zap.String("tenant_slug", tenantSlug),
				zap.String("product_slug", productSlug),
				zap.Error(err),
			)
		}
		s.metrics.RecordStorefrontView(ctx, tenantSlug, "not_found")
		return nil, domain.ErrNotFound
	}

	theme, err := s.themes.Load(ctx)
	if err != nil {
		// A broken theme read should not take the product page down.
		s.log.Error("theme load failed, rendering defaults",
			zap.String("tenant_slug", tenantSlug),
			zap.Error(err),
		)
		theme = themedomain.Defaults()
	}

	s.metrics.RecordStorefrontView(ctx, tenantSlug, "ok")
	return &domain.Page{
		TenantSlug: tenantSlug,
		Product:    product,
		Theme:      theme,
	}, nil
}
