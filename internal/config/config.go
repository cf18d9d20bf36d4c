package config

import (
	"time"
)

// StructuredConfig is the complete configuration of the bot.
type StructuredConfig struct {
	// Osu configures the osu! API client.
	Osu Osu `envPrefix:"OSU_"`

	// Discord configures the notification sink and the interaction endpoint.
	Discord Discord `envPrefix:"DISCORD_"`

	// Storage configures the relational store.
	Storage Storage

	// Server configures the HTTP listener.
	Server Server `envPrefix:"SERVER_"`

	// Workers configures the feed loops and button lifetimes.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the path of an optional JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

type Osu struct {
	ClientID string `env:"API_CLIENT_ID"`

	ClientSecret string `env:"API_SECRET"`

	APIBaseURL string `env:"API_URL" envDefault:"https://osu.ppy.sh/api/v2"`

	TokenURL string `env:"TOKEN_URL" envDefault:"https://osu.ppy.sh/oauth/token"`

	// WebBaseURL hosts the group pages, which are not part of the API.
	WebBaseURL string `env:"WEB_URL" envDefault:"https://osu.ppy.sh"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// MaxConcurrentRequests caps simultaneous beatmapset fetches.
	MaxConcurrentRequests int `env:"MAX_CONCURRENT_REQUESTS" envDefault:"16"`
}

type Discord struct {
	BotToken string `env:"TOKEN"`

	ApplicationID string `env:"APPLICATION_ID"`

	// PublicKey is the hex encoded Ed25519 key used to verify interactions.
	PublicKey string `env:"PUBLIC_KEY"`

	APIBaseURL string `env:"API_URL" envDefault:"https://discord.com/api/v10"`

	RegisterCommands bool `env:"REGISTER_COMMANDS"`
}

type Storage struct {
	DB DB
}

type DB struct {
	DSN string `env:"DATABASE_URL"`

	// Driver is either "pgx" or "sqlite3".
	Driver string `env:"DATABASE_DRIVER" envDefault:"pgx"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`

	// InteractionDeadline is how long the endpoint waits for a handler
	// before sending a deferred acknowledgement.
	InteractionDeadline time.Duration `env:"INTERACTION_DEADLINE" envDefault:"2500ms"`
}

type Workers struct {
	MapfeedInterval time.Duration `env:"MAPFEED_INTERVAL" envDefault:"15m"`

	GroupInterval time.Duration `env:"GROUP_INTERVAL" envDefault:"4h"`

	ErrorBackoff time.Duration `env:"ERROR_BACKOFF" envDefault:"3m"`

	ButtonTimeout time.Duration `env:"BUTTON_TIMEOUT" envDefault:"120m"`
}

// GetStructuredConfig loads, merges and validates the configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
