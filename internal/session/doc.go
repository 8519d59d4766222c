// Package session tracks which vault every session is viewing and owns the
// single live container shared by all viewers of one vault.
package session
