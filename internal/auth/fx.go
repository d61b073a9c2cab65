package auth

import (
	"github.com/storefrontlabs/vitrina/internal/auth/repository"
	"github.com/storefrontlabs/vitrina/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
