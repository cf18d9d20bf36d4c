// Package config provides configuration loading, merging, and validation
// for the bot process.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file in the working directory (loaded into the environment)
//  2. Environment variables, with defaults for every interval
//  3. Command-line flags
//  4. JSON config file named by -c or CONFIG
//
// The entry point is [GetStructuredConfig].
package config
