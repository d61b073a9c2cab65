package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/storefrontlabs/vitrina/internal/media"
	"github.com/storefrontlabs/vitrina/internal/observability/metrics"
	"github.com/storefrontlabs/vitrina/internal/product/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
	"github.com/storefrontlabs/vitrina/pkg/tenantctx"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Tenants tenantdomain.Service
	Media   media.Provider
	Metrics *metrics.Metrics
}

type service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	tenants tenantdomain.Service
	media   media.Provider
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &service{
		log:     p.Log,
		genID:   p.GenID,
		repo:    p.Repo,
		tenants: p.Tenants,
		media:   p.Media,
		metrics: p.Metrics,
	}
}

func (s *service) Create(ctx context.Context, in domain.Input) (*domain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, tenantdomain.ErrNotFound
	}

	product, err := s.buildProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = s.genID.Generate()
	product.TenantID = tenantID

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, tenantdomain.ErrNotFound
	}
	productID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	product, err := s.repo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

func (s *service) GetBySlug(ctx context.Context, productSlug string) (*domain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, tenantdomain.ErrNotFound
	}
	productSlug = strings.ToLower(strings.TrimSpace(productSlug))
	if productSlug == "" {
		return nil, domain.ErrNotFound
	}
	product, err := s.repo.FindFirstBySlug(ctx, tenantID, productSlug)
	if err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

func (s *service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResult, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, tenantdomain.ErrNotFound
	}

	offset := (req.Page - 1) * req.PageSize
	products, total, err := s.repo.List(ctx, tenantID, req.Search, offset, req.PageSize)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Response, 0, len(products))
	for i := range products {
		out = append(out, *toResponse(&products[i]))
	}
	return &domain.ListResult{Products: out, TotalCount: total}, nil
}

// Update overwrites the whole product document. The id and creation time
// survive; the slug is re-derived from the incoming name, so renames move
// the public URL.
func (s *service) Update(ctx context.Context, id string, in domain.Input) (*domain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, tenantdomain.ErrNotFound
	}
	productID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	existing, err := s.repo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	product, err := s.buildProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.TenantID = existing.TenantID
	product.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

// Delete removes the record first, then asks the media host to drop the
// product's image folder. The folder pass is best-effort: a failure leaves
// orphaned assets but never resurrects the product.
func (s *service) Delete(ctx context.Context, id string) error {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return tenantdomain.ErrNotFound
	}
	productID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrNotFound
	}

	product, err := s.repo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tenantID, productID); err != nil {
		return err
	}

	tenant, err := s.tenants.Get(ctx, tenantID)
	if err != nil {
		s.log.Warn("product deleted but tenant lookup for media cleanup failed",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		return nil
	}

	folder := tenant.Slug + "/" + product.Slug
	if err := s.media.DeleteFolder(ctx, folder); err != nil && !errors.Is(err, media.ErrNotConfigured) {
		s.metrics.RecordMediaDeleteFailure(ctx)
		s.log.Warn("product deleted but media folder cleanup failed",
			zap.String("product_id", productID.String()),
			zap.String("folder", folder),
			zap.Error(err),
		)
	}
	return nil
}

func (s *service) buildProduct(in domain.Input) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if strings.TrimSpace(in.Price) == "" {
		return nil, domain.ErrInvalidPrice
	}
	if len(in.Images) > media.MaxImagesPerProduct {
		return nil, domain.ErrTooManyImages
	}
	cover := in.CoverIndex
	if cover < 0 || (len(in.Images) > 0 && cover >= len(in.Images)) {
		return nil, domain.ErrInvalidCover
	}
	if len(in.Images) == 0 {
		cover = 0
	}

	return &domain.Product{
		Name:         name,
		Slug:         slug.Make(name),
		Price:        strings.TrimSpace(in.Price),
		Description:  in.Description,
		Images:       datatypes.NewJSONSlice(in.Images),
		CoverIndex:   cover,
		CustomFields: datatypes.NewJSONSlice(in.CustomFields),
		BatchNumber:  strings.TrimSpace(in.BatchNumber),
		ExpiryDate:   strings.TrimSpace(in.ExpiryDate),
		Verified:     in.Verified,
	}, nil
}

func toResponse(p *domain.Product) *domain.Response {
	return &domain.Response{
		ID:           p.ID.String(),
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		Description:  p.Description,
		Images:       p.Images,
		CoverIndex:   p.CoverIndex,
		Gallery:      p.Gallery(),
		CustomFields: p.CustomFields,
		BatchNumber:  p.BatchNumber,
		ExpiryDate:   p.ExpiryDate,
		Verified:     p.Verified,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
