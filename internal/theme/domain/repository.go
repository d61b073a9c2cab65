package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Find(ctx context.Context, tenantID snowflake.ID) (*Theme, error)
	Save(ctx context.Context, theme *Theme) error
}
