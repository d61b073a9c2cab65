package signup

import (
	"go.uber.org/fx"

	"github.com/storefrontlabs/vitrina/internal/signup/service"
)

var Module = fx.Module("signup",
	fx.Provide(service.New),
)
