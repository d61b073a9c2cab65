package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	authdomain "github.com/storefrontlabs/vitrina/internal/auth/domain"
	"github.com/storefrontlabs/vitrina/internal/signup/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
)

type fakeAuthService struct {
	createUserCalls int
	loginCalls      int
	createUserErr   error
	loginErr        error
}

func (f *fakeAuthService) CreateUser(ctx context.Context, req authdomain.CreateUserRequest) (*authdomain.User, error) {
	f.createUserCalls++
	if f.createUserErr != nil {
		return nil, f.createUserErr
	}
	return &authdomain.User{ID: snowflake.ID(200), Email: req.Email}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &authdomain.LoginResult{
		UserID:    snowflake.ID(200),
		SessionID: snowflake.ID(300),
		RawToken:  "session-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.Session, error) {
	return nil, authdomain.ErrInvalidSession
}

func (f *fakeAuthService) GetUser(ctx context.Context, id snowflake.ID) (*authdomain.User, error) {
	return nil, authdomain.ErrUserNotFound
}

type fakeTenantService struct {
	createCalls int
	createErr   error
	lastSlug    string
	lastOwner   snowflake.ID
}

func (f *fakeTenantService) Create(ctx context.Context, req tenantdomain.CreateRequest) (*tenantdomain.Response, error) {
	f.createCalls++
	f.lastSlug = req.Slug
	f.lastOwner = req.OwnerUserID
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &tenantdomain.Response{ID: snowflake.ID(100).String(), Slug: req.Slug, CompanyName: req.CompanyName}, nil
}

func (f *fakeTenantService) Get(ctx context.Context, id snowflake.ID) (*tenantdomain.Response, error) {
	return nil, tenantdomain.ErrNotFound
}

func (f *fakeTenantService) GetByOwner(ctx context.Context, ownerUserID snowflake.ID) (*tenantdomain.Response, error) {
	return nil, tenantdomain.ErrNotFound
}

func (f *fakeTenantService) ResolveSlug(ctx context.Context, slug string) (snowflake.ID, error) {
	return 0, tenantdomain.ErrNotFound
}

func (f *fakeTenantService) UpdateContact(ctx context.Context, id snowflake.ID, contactNumber string) error {
	return nil
}

func newService(auth *fakeAuthService, tenants *fakeTenantService) domain.Service {
	return New(Params{Log: zap.NewNop(), Auth: auth, Tenants: tenants})
}

func TestSignupProvisionsUserTenantAndSession(t *testing.T) {
	auth := &fakeAuthService{}
	tenants := &fakeTenantService{}
	svc := newService(auth, tenants)

	result, err := svc.Signup(context.Background(), domain.Request{
		Email:       "a@example.com",
		Password:    "correct-horse",
		CompanyName: "Acme",
		StoreSlug:   "acme",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if auth.createUserCalls != 1 || tenants.createCalls != 1 || auth.loginCalls != 1 {
		t.Fatalf("calls: create=%d tenant=%d login=%d", auth.createUserCalls, tenants.createCalls, auth.loginCalls)
	}
	if tenants.lastOwner != snowflake.ID(200) {
		t.Fatalf("tenant owner %d, want 200", tenants.lastOwner)
	}
	if result.RawToken != "session-token" {
		t.Fatalf("raw token %q", result.RawToken)
	}
	if result.Tenant.Slug != "acme" {
		t.Fatalf("tenant slug %q", result.Tenant.Slug)
	}
}

func TestSignupStopsWhenUserCreationFails(t *testing.T) {
	auth := &fakeAuthService{createUserErr: authdomain.ErrUserExists}
	tenants := &fakeTenantService{}
	svc := newService(auth, tenants)

	_, err := svc.Signup(context.Background(), domain.Request{Email: "a@example.com", Password: "pw-long-enough", CompanyName: "Acme", StoreSlug: "acme"})
	if !errors.Is(err, authdomain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if tenants.createCalls != 0 || auth.loginCalls != 0 {
		t.Fatalf("later steps ran: tenant=%d login=%d", tenants.createCalls, auth.loginCalls)
	}
}

func TestSignupSurfacesTenantFailure(t *testing.T) {
	auth := &fakeAuthService{}
	tenants := &fakeTenantService{createErr: tenantdomain.ErrSlugTaken}
	svc := newService(auth, tenants)

	_, err := svc.Signup(context.Background(), domain.Request{Email: "a@example.com", Password: "pw-long-enough", CompanyName: "Acme", StoreSlug: "acme"})
	if !errors.Is(err, tenantdomain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
	if auth.loginCalls != 0 {
		t.Fatalf("login ran after tenant failure")
	}
}
