package config

import "github.com/Skotchmaster/phone_shop/pkg/config"

type ServiceConfig struct {
	config.Config
}

func Load() ServiceConfig {
	cfg := config.Load()

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	return ServiceConfig{Config: cfg}
}

// SearchEnabled reports whether product search should go through Elasticsearch.
func (c ServiceConfig) SearchEnabled() bool {
	return c.ESURL != ""
}
