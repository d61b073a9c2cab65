package domain

import (
	"context"
	"errors"

	"github.com/storefrontlabs/vitrina/internal/theme/schema"
)

type Service interface {
	// Load returns the tenant's theme with defaults merged in; every default
	// key is always present. Missing records load as pure defaults.
	Load(ctx context.Context) (Record, error)
	// Save overwrites the tenant's theme record. Last write wins.
	Save(ctx context.Context, record Record) error
	// Fields describes the editor widget for each key of the record.
	Fields(record Record) []schema.FieldSpec
}

var (
	ErrInvalidTenant = errors.New("invalid_tenant")
	ErrNotFound      = errors.New("not_found")
)
