package domain

import (
	"context"
	"time"

	authdomain "github.com/storefrontlabs/vitrina/internal/auth/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
)

// Request carries everything signup needs in one shot: the credentials and
// the storefront being claimed.
type Request struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	DisplayName   string `json:"displayName"`
	CompanyName   string `json:"companyName" binding:"required"`
	StoreSlug     string `json:"storeSlug" binding:"required"`
	ContactNumber string `json:"contactNumber"`

	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

type Result struct {
	User      *authdomain.User
	Tenant    *tenantdomain.Response
	RawToken  string
	ExpiresAt time.Time
}

// Service provisions a new account: user, tenant, session, in that order.
type Service interface {
	Signup(ctx context.Context, req Request) (*Result, error)
}
