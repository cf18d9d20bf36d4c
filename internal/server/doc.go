// Package server runs the HTTP transport of the bot: the interaction
// endpoint together with the health, metrics and version routes.
//
// The server is started and stopped as a worker, so it shuts down
// gracefully together with the feed loops.
package server
