// Package middleware provides ready-made send middlewares for the client
// package: structured request/response logging and per-request timeouts.
package middleware
