package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	productdomain "github.com/storefrontlabs/vitrina/internal/product/domain"
	"github.com/storefrontlabs/vitrina/internal/storefront/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
	themedomain "github.com/storefrontlabs/vitrina/internal/theme/domain"
	"github.com/storefrontlabs/vitrina/internal/theme/schema"
	"github.com/storefrontlabs/vitrina/pkg/tenantctx"
)

type tenantStub struct {
	id  snowflake.ID
	err error
}

func (f *tenantStub) Create(ctx context.Context, req tenantdomain.CreateRequest) (*tenantdomain.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *tenantStub) Get(ctx context.Context, id snowflake.ID) (*tenantdomain.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *tenantStub) GetByOwner(ctx context.Context, ownerUserID snowflake.ID) (*tenantdomain.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *tenantStub) ResolveSlug(ctx context.Context, slug string) (snowflake.ID, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

func (f *tenantStub) UpdateContact(ctx context.Context, id snowflake.ID, contactNumber string) error {
	return errors.New("not implemented")
}

type productStub struct {
	resp       *productdomain.Response
	err        error
	seenTenant snowflake.ID
}

func (f *productStub) Create(ctx context.Context, in productdomain.Input) (*productdomain.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *productStub) Get(ctx context.Context, id string) (*productdomain.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *productStub) GetBySlug(ctx context.Context, slug string) (*productdomain.Response, error) {
	if id, ok := tenantctx.TenantIDFromContext(ctx); ok {
		f.seenTenant = id
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *productStub) List(ctx context.Context, req productdomain.ListRequest) (*productdomain.ListResult, error) {
	return nil, errors.New("not implemented")
}

func (f *productStub) Update(ctx context.Context, id string, in productdomain.Input) (*productdomain.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *productStub) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type themeStub struct {
	record themedomain.Record
	err    error
}

func (f *themeStub) Load(ctx context.Context) (themedomain.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *themeStub) Save(ctx context.Context, record themedomain.Record) error {
	return errors.New("not implemented")
}

func (f *themeStub) Fields(record themedomain.Record) []schema.FieldSpec {
	return nil
}

func newService(tenants *tenantStub, products *productStub, themes *themeStub) domain.Service {
	return New(Params{
		Log:      zap.NewNop(),
		Tenants:  tenants,
		Products: products,
		Themes:   themes,
	})
}

func TestProductPageAssemblesThemeAndProduct(t *testing.T) {
	tenants := &tenantStub{id: snowflake.ID(42)}
	products := &productStub{resp: &productdomain.Response{Name: "Cool Mug", Slug: "cool-mug"}}
	themes := &themeStub{record: themedomain.Record{"background": "#000000"}}
	svc := newService(tenants, products, themes)

	page, err := svc.ProductPage(context.Background(), "acme", "cool-mug")
	if err != nil {
		t.Fatalf("product page: %v", err)
	}
	if page.TenantSlug != "acme" {
		t.Fatalf("tenant slug %q", page.TenantSlug)
	}
	if page.Product.Slug != "cool-mug" {
		t.Fatalf("product slug %q", page.Product.Slug)
	}
	if page.Theme["background"] != "#000000" {
		t.Fatalf("theme %v", page.Theme)
	}
	if products.seenTenant != snowflake.ID(42) {
		t.Fatalf("expected resolved tenant in context, saw %d", products.seenTenant)
	}
}

func TestProductPageUnknownTenant(t *testing.T) {
	svc := newService(&tenantStub{err: tenantdomain.ErrNotFound}, &productStub{}, &themeStub{})

	if _, err := svc.ProductPage(context.Background(), "ghost", "mug"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductPageUnknownProduct(t *testing.T) {
	svc := newService(&tenantStub{id: 1}, &productStub{err: productdomain.ErrNotFound}, &themeStub{})

	if _, err := svc.ProductPage(context.Background(), "acme", "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Internal read failures never leak past the storefront.
func TestProductPageCollapsesInternalErrors(t *testing.T) {
	svc := newService(&tenantStub{id: 1}, &productStub{err: errors.New("db down")}, &themeStub{})

	if _, err := svc.ProductPage(context.Background(), "acme", "mug"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductPageRendersDefaultsWhenThemeReadFails(t *testing.T) {
	products := &productStub{resp: &productdomain.Response{Slug: "mug"}}
	svc := newService(&tenantStub{id: 1}, products, &themeStub{err: errors.New("db down")})

	page, err := svc.ProductPage(context.Background(), "acme", "mug")
	if err != nil {
		t.Fatalf("product page: %v", err)
	}
	if page.Theme["background"] != "#ffffff" {
		t.Fatalf("expected default theme, got %v", page.Theme)
	}
}
