// Package http implements the HTTP surface of the bot.
//
// Discord delivers slash commands and button presses to POST /interactions.
// Requests are verified against the application public key, traced and
// logged before they reach the command router or the component registry.
// The package also serves /healthz, /metrics and /version.
package http
