package config

import "errors"

// Sentinel errors returned by validation. Each one names the configuration
// section that is incomplete.
var (
	ErrInvalidOsuConfigs     = errors.New("invalid osu! api configuration")
	ErrInvalidDiscordConfigs = errors.New("invalid discord configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
