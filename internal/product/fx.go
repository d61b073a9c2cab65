package product

import (
	"go.uber.org/fx"

	"github.com/storefrontlabs/vitrina/internal/product/repository"
	"github.com/storefrontlabs/vitrina/internal/product/service"
)

var Module = fx.Module("product",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
