package model

import "time"

// RefreshToken is a persisted long-lived opaque token. It is created at
// login and mutated only by revocation; refreshing an access token never
// extends it.
type RefreshToken struct {
	Token     string     `json:"token"`
	UserID    string     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Active reports whether the token can still be exchanged for access
// tokens: not revoked and not past its expiry.
func (t RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
