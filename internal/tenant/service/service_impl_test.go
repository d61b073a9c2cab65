package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/storefrontlabs/vitrina/internal/tenant/domain"
	"github.com/storefrontlabs/vitrina/internal/tenant/repository"
)

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}
	return node
}

func setupService(t *testing.T, node *snowflake.Node) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.Tenant{}, &domain.TenantSlug{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.New(db),
	})
}

func TestCreateSlugifiesStoreName(t *testing.T) {
	node := mustNode(t)
	svc := setupService(t, node)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		Slug:        " Acme Store ",
		CompanyName: "Acme Inc",
		OwnerUserID: node.Generate(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Slug != "acme-store" {
		t.Fatalf("expected slug acme-store, got %q", resp.Slug)
	}
}

func TestCreateRejectsTakenSlug(t *testing.T) {
	node := mustNode(t)
	svc := setupService(t, node)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateRequest{Slug: "acme", CompanyName: "Acme", OwnerUserID: node.Generate()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, domain.CreateRequest{Slug: "ACME", CompanyName: "Other", OwnerUserID: node.Generate()})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	node := mustNode(t)
	svc := setupService(t, node)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateRequest{Slug: "acme", CompanyName: "  "}); !errors.Is(err, domain.ErrInvalidCompanyName) {
		t.Fatalf("expected ErrInvalidCompanyName, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateRequest{Slug: "  !! ", CompanyName: "Acme"}); !errors.Is(err, domain.ErrInvalidSlug) {
		t.Fatalf("expected ErrInvalidSlug, got %v", err)
	}
}

func TestResolveSlugIsCaseInsensitive(t *testing.T) {
	node := mustNode(t)
	svc := setupService(t, node)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{Slug: "acme", CompanyName: "Acme", OwnerUserID: node.Generate()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	id, err := svc.ResolveSlug(ctx, "  ACME ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.String() != created.ID {
		t.Fatalf("resolved %s, want %s", id, created.ID)
	}
}

func TestResolveUnknownSlug(t *testing.T) {
	node := mustNode(t)
	svc := setupService(t, node)

	if _, err := svc.ResolveSlug(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ResolveSlug(context.Background(), "   "); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank, got %v", err)
	}
}

func TestGetByOwner(t *testing.T) {
	node := mustNode(t)
	svc := setupService(t, node)
	ctx := context.Background()
	owner := node.Generate()

	created, err := svc.Create(ctx, domain.CreateRequest{Slug: "acme", CompanyName: "Acme", OwnerUserID: owner})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("get by owner: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got %s, want %s", got.ID, created.ID)
	}

	if _, err := svc.GetByOwner(ctx, node.Generate()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
