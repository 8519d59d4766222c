// Package server runs the administrative HTTP API of vaultd.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown. Requests are traced with OpenTelemetry before they reach the
// router.
package server
