package storefront

import (
	"go.uber.org/fx"

	"github.com/storefrontlabs/vitrina/internal/storefront/service"
)

var Module = fx.Module("storefront",
	fx.Provide(service.New),
)
