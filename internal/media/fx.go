package media

import (
	"github.com/storefrontlabs/vitrina/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.media",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config, log *zap.Logger) Provider {
	if cfg.Media.CloudName == "" {
		log.Warn("media host not configured; uploads disabled")
		return &NoOpProvider{}
	}
	return NewCloudinary(Config{
		BaseURL:      cfg.Media.BaseURL,
		CloudName:    cfg.Media.CloudName,
		UploadPreset: cfg.Media.UploadPreset,
		APIKey:       cfg.Media.APIKey,
		APISecret:    cfg.Media.APISecret,
	}, log)
}
