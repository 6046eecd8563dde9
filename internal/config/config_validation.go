package config

import "time"

// Fallback values applied after merging all sources. Only fields with a
// safe, non-secret default get one; secrets must be supplied explicitly.
const (
	defaultHTTPAddress    = ":8080"
	defaultEngine         = "postgres"
	defaultTokenIssuer    = "~Instock!~"
	defaultRequestTimeout = 30 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.Engine == "" {
		cfg.Storage.DB.Engine = defaultEngine
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Engine != "postgres" && cfg.Storage.DB.Engine != "sqlite" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
