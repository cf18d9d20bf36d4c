package config

import (
	"encoding/hex"
	"fmt"
)

func (cfg *StructuredConfig) validate() error {
	if cfg.Osu.ClientID == "" || cfg.Osu.ClientSecret == "" ||
		cfg.Osu.APIBaseURL == "" || cfg.Osu.TokenURL == "" || cfg.Osu.WebBaseURL == "" {
		return ErrInvalidOsuConfigs
	}

	if cfg.Osu.MaxConcurrentRequests < 1 {
		return fmt.Errorf("%w: max concurrent requests must be positive", ErrInvalidOsuConfigs)
	}

	if cfg.Discord.BotToken == "" || cfg.Discord.ApplicationID == "" {
		return ErrInvalidDiscordConfigs
	}

	if cfg.Discord.PublicKey != "" {
		if key, err := hex.DecodeString(cfg.Discord.PublicKey); err != nil || len(key) != 32 {
			return fmt.Errorf("%w: public key must be 32 hex encoded bytes", ErrInvalidDiscordConfigs)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	w := cfg.Workers
	if w.MapfeedInterval <= 0 || w.GroupInterval <= 0 || w.ErrorBackoff <= 0 || w.ButtonTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
