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

	"github.com/storefrontlabs/vitrina/internal/auth/domain"
	"github.com/storefrontlabs/vitrina/internal/auth/repository"
)

func setupService(t *testing.T) domain.Service {
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
	if err := db.AutoMigrate(&domain.User{}, &domain.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	repo, sessionRepo := repository.New(db)
	return New(zap.NewNop(), repo, sessionRepo, node)
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:    "  Alice@Example.COM ",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.DisplayName != "alice" {
		t.Fatalf("expected display name from local part, got %q", user.DisplayName)
	}
	if user.PasswordHash == nil || *user.PasswordHash == "correct-horse" {
		t.Fatal("expected password to be hashed")
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "not-an-email", Password: "long-enough"}); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "a@example.com", Password: "short"}); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "a@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "A@example.com", Password: "correct-horse"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "a@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "a@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected a raw session token")
	}

	session, err := svc.Authenticate(ctx, result.RawToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if session.UserID != user.ID {
		t.Fatalf("session user %s, want %s", session.UserID, user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "a@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "a@example.com", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "ghost@example.com", Password: "whatever-long"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "a@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	result, err := svc.Login(ctx, domain.LoginRequest{Email: "a@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, result.RawToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, result.RawToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}

	// Logging out an already dead token is a no-op.
	if err := svc.Logout(ctx, result.RawToken); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.Authenticate(context.Background(), "nonsense"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "  "); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for blank, got %v", err)
	}
}
