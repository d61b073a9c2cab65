package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id snowflake.ID) (*Response, error)
	GetByOwner(ctx context.Context, ownerUserID snowflake.ID) (*Response, error)
	// ResolveSlug maps a public tenant slug to the internal tenant id.
	ResolveSlug(ctx context.Context, slug string) (snowflake.ID, error)
	UpdateContact(ctx context.Context, id snowflake.ID, contactNumber string) error
}

type CreateRequest struct {
	Slug          string
	CompanyName   string
	ContactNumber string
	OwnerUserID   snowflake.ID
}

type Response struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	CompanyName   string    `json:"company_name"`
	ContactNumber string    `json:"contact_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

var (
	ErrInvalidSlug        = errors.New("invalid_slug")
	ErrInvalidCompanyName = errors.New("invalid_company_name")
	ErrSlugTaken          = errors.New("slug_taken")
	ErrNotFound           = errors.New("not_found")
)
