package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/storefrontlabs/vitrina/internal/tenant/domain"
	"github.com/storefrontlabs/vitrina/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("tenant.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return nil, domain.ErrInvalidCompanyName
	}

	tenantSlug := slug.Make(strings.TrimSpace(req.Slug))
	if tenantSlug == "" {
		return nil, domain.ErrInvalidSlug
	}

	if _, err := s.repo.FindSlug(ctx, tenantSlug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	tenant := &domain.Tenant{
		ID:            s.genID.Generate(),
		Slug:          tenantSlug,
		CompanyName:   companyName,
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		OwnerUserID:   req.OwnerUserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateTenant(ctx, tenant); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	// Second write, no transaction: on failure the slug mapping is missing
	// until the next admin login re-claims it.
	if err := s.repo.CreateSlug(ctx, &domain.TenantSlug{Slug: tenantSlug, TenantID: tenant.ID}); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		s.log.Error("tenant created but slug mapping write failed",
			zap.String("tenant_id", tenant.ID.String()),
			zap.String("slug", tenantSlug),
			zap.Error(err),
		)
		return nil, err
	}

	resp := s.toResponse(tenant)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*domain.Response, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(tenant)
	return &resp, nil
}

func (s *Service) GetByOwner(ctx context.Context, ownerUserID snowflake.ID) (*domain.Response, error) {
	tenant, err := s.repo.FindByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(tenant)
	return &resp, nil
}

func (s *Service) ResolveSlug(ctx context.Context, raw string) (snowflake.ID, error) {
	tenantSlug := strings.ToLower(strings.TrimSpace(raw))
	if tenantSlug == "" {
		return 0, domain.ErrNotFound
	}

	mapping, err := s.repo.FindSlug(ctx, tenantSlug)
	if err != nil {
		return 0, err
	}
	return mapping.TenantID, nil
}

func (s *Service) UpdateContact(ctx context.Context, id snowflake.ID, contactNumber string) error {
	return s.repo.UpdateContact(ctx, id, strings.TrimSpace(contactNumber))
}

func (s *Service) toResponse(t *domain.Tenant) domain.Response {
	return domain.Response{
		ID:            t.ID.String(),
		Slug:          t.Slug,
		CompanyName:   t.CompanyName,
		ContactNumber: t.ContactNumber,
		CreatedAt:     t.CreatedAt,
	}
}
