package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	authdomain "github.com/storefrontlabs/vitrina/internal/auth/domain"
	productdomain "github.com/storefrontlabs/vitrina/internal/product/domain"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
	themedomain "github.com/storefrontlabs/vitrina/internal/theme/domain"
	"github.com/storefrontlabs/vitrina/pkg/db"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg db.Config) error {
		if cfg.Type == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// mysql and sqlite (tests, local hacking) take the gorm schema as-is.
		return conn.AutoMigrate(
			&authdomain.User{},
			&authdomain.Session{},
			&tenantdomain.Tenant{},
			&tenantdomain.TenantSlug{},
			&themedomain.Theme{},
			&productdomain.Product{},
		)
	}),
)
