package models

import "time"

// ResetToken is an opaque credential bound to a single administrator
// account for password recovery. At most one pending token exists per
// account: issuing a new one overwrites any previous pending token.
type ResetToken struct {
	// AdminID is the account the token is bound to.
	AdminID int64 `json:"-"`

	// Token is the opaque token value sent to the account owner.
	Token string `json:"-"`

	// ExpiresAt is the moment after which the token is no longer accepted.
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the token is past its expiry at the given moment.
func (t ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "reset_tokens"
}
