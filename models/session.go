package models

// Session is the token bundle issued by the identity provider on login.
// The application treats it as opaque: tokens are never minted, refreshed,
// or introspected server-side. The client caches the bundle locally and
// discards it on sign-out.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds at issuance.
	ExpiresIn int64 `json:"expires_in"`

	// ExpiresAt is the absolute expiry as a Unix timestamp. Used by the
	// client as a fallback when the access token carries no exp claim.
	ExpiresAt int64 `json:"expires_at"`
}
