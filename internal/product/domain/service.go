package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidName   = errors.New("product name is required")
	ErrInvalidPrice  = errors.New("product price is required")
	ErrTooManyImages = errors.New("too many images")
	ErrInvalidCover  = errors.New("cover index out of range")
)

// Input carries the full editable state of a product. Update is a whole
// document overwrite: callers send every field, not a patch.
type Input struct {
	Name         string        `json:"name" binding:"required"`
	Price        string        `json:"price" binding:"required"`
	Description  string        `json:"description"`
	Images       []string      `json:"images"`
	CoverIndex   int           `json:"coverIndex"`
	CustomFields []CustomField `json:"customFields"`
	BatchNumber  string        `json:"batchNumber"`
	ExpiryDate   string        `json:"expiryDate"`
	Verified     bool          `json:"verified"`
}

type Response struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Price        string        `json:"price"`
	Description  string        `json:"description"`
	Images       []string      `json:"images"`
	CoverIndex   int           `json:"coverIndex"`
	Gallery      []string      `json:"gallery"`
	CustomFields []CustomField `json:"customFields"`
	BatchNumber  string        `json:"batchNumber,omitempty"`
	ExpiryDate   string        `json:"expiryDate,omitempty"`
	Verified     bool          `json:"verified"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type ListRequest struct {
	Search   string
	Page     int
	PageSize int
}

type ListResult struct {
	Products   []Response
	TotalCount int64
}

type Service interface {
	Create(ctx context.Context, in Input) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResult, error)
	Update(ctx context.Context, id string, in Input) (*Response, error)
	Delete(ctx context.Context, id string) error
}
