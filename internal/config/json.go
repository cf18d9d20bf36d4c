package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON names. Durations
// accept Go duration strings or nanoseconds.
type StructuredJSONConfig struct {
	Osu struct {
		ClientID              string   `json:"client_id"`
		ClientSecret          string   `json:"client_secret"`
		APIBaseURL            string   `json:"api_url"`
		TokenURL              string   `json:"token_url"`
		WebBaseURL            string   `json:"web_url"`
		RequestTimeout        Duration `json:"request_timeout"`
		MaxConcurrentRequests int      `json:"max_concurrent_requests"`
	} `json:"osu,omitempty"`

	Discord struct {
		BotToken         string `json:"token"`
		ApplicationID    string `json:"application_id"`
		PublicKey        string `json:"public_key"`
		APIBaseURL       string `json:"api_url"`
		RegisterCommands bool   `json:"register_commands"`
	} `json:"discord,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		InteractionDeadline Duration `json:"interaction_deadline"`
	} `json:"server,omitempty"`

	Workers struct {
		MapfeedInterval Duration `json:"mapfeed_interval"`
		GroupInterval   Duration `json:"group_interval"`
		ErrorBackoff    Duration `json:"error_backoff"`
		ButtonTimeout   Duration `json:"button_timeout"`
	} `json:"workers,omitempty"`

	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Osu: Osu{
			ClientID:              jsonCfg.Osu.ClientID,
			ClientSecret:          jsonCfg.Osu.ClientSecret,
			APIBaseURL:            jsonCfg.Osu.APIBaseURL,
			TokenURL:              jsonCfg.Osu.TokenURL,
			WebBaseURL:            jsonCfg.Osu.WebBaseURL,
			RequestTimeout:        time.Duration(jsonCfg.Osu.RequestTimeout),
			MaxConcurrentRequests: jsonCfg.Osu.MaxConcurrentRequests,
		},
		Discord: Discord{
			BotToken:         jsonCfg.Discord.BotToken,
			ApplicationID:    jsonCfg.Discord.ApplicationID,
			PublicKey:        jsonCfg.Discord.PublicKey,
			APIBaseURL:       jsonCfg.Discord.APIBaseURL,
			RegisterCommands: jsonCfg.Discord.RegisterCommands,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:         jsonCfg.Server.HTTPAddress,
			InteractionDeadline: time.Duration(jsonCfg.Server.InteractionDeadline),
		},
		Workers: Workers{
			MapfeedInterval: time.Duration(jsonCfg.Workers.MapfeedInterval),
			GroupInterval:   time.Duration(jsonCfg.Workers.GroupInterval),
			ErrorBackoff:    time.Duration(jsonCfg.Workers.ErrorBackoff),
			ButtonTimeout:   time.Duration(jsonCfg.Workers.ButtonTimeout),
		},
		LogLevel: jsonCfg.LogLevel,
	}

	return cfg, nil
}

// Duration is a time.Duration that decodes from "15m" style strings as well
// as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
