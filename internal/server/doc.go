// Package server runs the sync server's HTTP listener and shuts it down
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
