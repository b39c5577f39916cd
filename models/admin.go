package models

import "time"

// RootAdminID is the reserved identifier of the built-in superuser account.
// The account is seeded by the migrations, is never included in listings,
// and is the only identity allowed to perform most mutating operations.
const RootAdminID int64 = 1

// Admin represents an administrator account.
// It contains identity attributes, credential data and a free-form set of
// metadata strings that also carries the account's access labels.
// Sensitive fields must never be exposed outside trusted boundaries.
type Admin struct {
	// AdminID is the internal unique identifier of the administrator.
	AdminID int64 `json:"id"`

	// Name is the display name of the administrator.
	Name string `json:"name"`

	// Email is the unique email address. Used as the login identifier
	// and as the lookup key for the password reset flow.
	Email string `json:"email"`

	// PhoneNum is the administrator's contact phone number.
	PhoneNum string `json:"phone_num"`

	// PasswordHash stores the bcrypt hash of the administrator's password.
	// This value MUST be a hash, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Meta is the free-form metadata attached to the account.
	// Access labels are stored here as "access.<name>" entries alongside
	// any other properties.
	Meta []string `json:"meta"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsRoot reports whether the account is the reserved superuser.
// All policy decisions go through this method rather than comparing
// identifiers at call sites.
func (a Admin) IsRoot() bool {
	return a.AdminID == RootAdminID
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
