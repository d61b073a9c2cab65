package service

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	authdomain "github.com/storefrontlabs/vitrina/internal/auth/domain"
	"github.com/storefrontlabs/vitrina/internal/signup/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Auth    authdomain.Service
	Tenants tenantdomain.Service
}

type service struct {
	log     *zap.Logger
	auth    authdomain.Service
	tenants tenantdomain.Service
}

func New(p Params) domain.Service {
	return &service{log: p.Log, auth: p.Auth, tenants: p.Tenants}
}

// Signup is a script of three steps with explicit unwind points. User
// creation failing aborts cleanly. Tenant creation failing leaves the user
// row behind; a retry with the same email reports the account as taken, so
// the orphan is surfaced rather than silently reused. Login failing after
// both writes is effectively impossible with the just-validated password and
// is returned as-is.
func (s *service) Signup(ctx context.Context, req domain.Request) (*domain.Result, error) {
	user, err := s.auth.CreateUser(ctx, authdomain.CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenants.Create(ctx, tenantdomain.CreateRequest{
		Slug:          req.StoreSlug,
		CompanyName:   req.CompanyName,
		ContactNumber: req.ContactNumber,
		OwnerUserID:   user.ID,
	})
	if err != nil {
		s.log.Error("signup created user but tenant provisioning failed",
			zap.String("user_id", user.ID.String()),
			zap.String("store_slug", req.StoreSlug),
			zap.Error(err),
		)
		return nil, err
	}

	login, err := s.auth.Login(ctx, authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: req.UserAgent,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		s.log.Error("signup provisioned account but session issue failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return &domain.Result{
		User:      user,
		Tenant:    tenant,
		RawToken:  login.RawToken,
		ExpiresAt: login.ExpiresAt,
	}, nil
}
