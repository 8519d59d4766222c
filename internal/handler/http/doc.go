// Package http implements the HTTP transport of the vault service.
//
// It exposes two groups of routes. The administrative API lists, peeks and
// deletes stored vaults and reads the persistence failure journal. The host
// bridge delivers session lifecycle notifications and mutation attempts of
// an out-of-process host to the save orchestrator. Both groups require a
// bearer JWT whose scopes carry the permission nodes of models.Permission*.
package http
