package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used to authenticate administrative API calls.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// for the standard claim set. Scopes lists the permission nodes (see
// PermissionAdmin and friends) the bearer was granted.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Scopes is the custom "scopes" claim.
	Scopes []string `json:"scopes,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Allows reports whether the token grants permission.
func (t *Token) Allows(permission string) bool {
	return HasPermission(t.Scopes, permission)
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
