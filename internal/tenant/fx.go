package tenant

import (
	"github.com/storefrontlabs/vitrina/internal/tenant/repository"
	"github.com/storefrontlabs/vitrina/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
