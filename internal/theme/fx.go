package theme

import (
	"github.com/storefrontlabs/vitrina/internal/config"
	"github.com/storefrontlabs/vitrina/internal/theme/repository"
	"github.com/storefrontlabs/vitrina/internal/theme/schema"
	"github.com/storefrontlabs/vitrina/internal/theme/service"
	"go.uber.org/fx"
)

var Module = fx.Module("theme.service",
	fx.Provide(newSchema),
	fx.Provide(repository.New),
	fx.Provide(service.New),
)

func newSchema(cfg config.Config) (schema.Schema, error) {
	return schema.Load(cfg.ThemeSchemaPath)
}
