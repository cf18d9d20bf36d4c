package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value. An empty host listens on every
// interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments into a partial config.
// Flags that are not given stay zero so they do not override other sources.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("midnight", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var logLevel string
	var mapfeedInterval, groupInterval, errorBackoff time.Duration
	var registerCommands bool

	fs.Var(&serverAddress, "a", "HTTP listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&mapfeedInterval, "mapfeed-interval", 0, "Mapfeed poll interval (e.g. 15m)")
	fs.DurationVar(&groupInterval, "group-interval", 0, "Group feed poll interval (e.g. 4h)")
	fs.DurationVar(&errorBackoff, "error-backoff", 0, "Delay after a failed cycle")
	fs.BoolVar(&registerCommands, "register-commands", false, "Register slash commands on start")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Discord: Discord{
			RegisterCommands: registerCommands,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			MapfeedInterval: mapfeedInterval,
			GroupInterval:   groupInterval,
			ErrorBackoff:    errorBackoff,
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, found := strings.Cut(s, ":")
	if !found {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
