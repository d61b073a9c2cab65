package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/storefrontlabs/vitrina/internal/theme/domain"
	"github.com/storefrontlabs/vitrina/internal/theme/repository"
	"github.com/storefrontlabs/vitrina/internal/theme/schema"
	"github.com/storefrontlabs/vitrina/pkg/tenantctx"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Theme{}))

	return New(Params{
		Log:    zap.NewNop(),
		Repo:   repository.New(db),
		Schema: schema.Builtin(),
	})
}

func tenantContext(t *testing.T) context.Context {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return tenantctx.WithTenantID(context.Background(), int64(node.Generate()))
}

func TestLoadWithoutRecordReturnsDefaults(t *testing.T) {
	svc := setupService(t)
	ctx := tenantContext(t)

	record, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Defaults(), record)
}

func TestLoadMergesPersistedOverDefaults(t *testing.T) {
	svc := setupService(t)
	ctx := tenantContext(t)

	require.NoError(t, svc.Save(ctx, domain.Record{"primaryColor": "#ff0000"}))

	record, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", record["primaryColor"])
	// Keys the stored subset lacks fall back to defaults.
	assert.Equal(t, "#ffffff", record["background"])
	assert.Len(t, record, len(domain.Defaults()))
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	svc := setupService(t)
	ctx := tenantContext(t)

	require.NoError(t, svc.Save(ctx, domain.Record{"primaryColor": "#ff0000", "opacity": "0.5"}))
	require.NoError(t, svc.Save(ctx, domain.Record{"primaryColor": "#00ff00"}))

	record, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", record["primaryColor"])
	// opacity was dropped by the second save, so the default returns.
	assert.Equal(t, "1", record["opacity"])
}

func TestThemesAreTenantScoped(t *testing.T) {
	svc := setupService(t)
	ctxA := tenantctx.WithTenantID(context.Background(), 101)
	ctxB := tenantctx.WithTenantID(context.Background(), 102)

	require.NoError(t, svc.Save(ctxA, domain.Record{"background": "#000000"}))

	record, err := svc.Load(ctxB)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", record["background"])
}

func TestLoadRequiresTenant(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidTenant)
}
