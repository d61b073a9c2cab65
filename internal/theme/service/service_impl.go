package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/storefrontlabs/vitrina/internal/theme/domain"
	"github.com/storefrontlabs/vitrina/internal/theme/schema"
	"github.com/storefrontlabs/vitrina/pkg/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Repo   domain.Repository
	Schema schema.Schema
}

type Service struct {
	log    *zap.Logger
	repo   domain.Repository
	schema schema.Schema
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("theme.service"),
		repo:   p.Repo,
		schema: p.Schema,
	}
}

func (s *Service) Load(ctx context.Context) (domain.Record, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, domain.ErrInvalidTenant
	}

	record := domain.Defaults()

	theme, err := s.repo.Find(ctx, tenantID)
	if errors.Is(err, domain.ErrNotFound) {
		return record, nil
	}
	if err != nil {
		return nil, err
	}

	// Persisted values win; defaults fill any key the stored subset lacks.
	for key, value := range theme.Styles {
		record[key] = fmt.Sprint(value)
	}
	return record, nil
}

func (s *Service) Save(ctx context.Context, record domain.Record) error {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return domain.ErrInvalidTenant
	}

	styles := datatypes.JSONMap{}
	for key, value := range record {
		styles[key] = value
	}

	return s.repo.Save(ctx, &domain.Theme{
		TenantID:  tenantID,
		Styles:    styles,
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *Service) Fields(record domain.Record) []schema.FieldSpec {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	return s.schema.FieldsFor(keys)
}
