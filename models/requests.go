package models

// NewAdmin is the payload for registering a new administrator account.
// Accesses carries plain permission names; the service namespaces them
// into access labels before storage.
type NewAdmin struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	PhoneNum        string   `json:"phone_num"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
	Accesses        []string `json:"accesses"`
}

// UpdateAccesses replaces the access labels of the target account.
// Non-access metadata entries are preserved untouched.
type UpdateAccesses struct {
	ID       int64    `json:"id"`
	Accesses []string `json:"accesses"`
}

// UpdateMeta replaces the entire metadata list of the target account,
// access labels included.
type UpdateMeta struct {
	ID   int64    `json:"id"`
	Meta []string `json:"meta"`
}

// UpdatePassword sets a new password for the target account.
type UpdatePassword struct {
	ID              int64  `json:"id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"password_confm"`
}

// ResetPassword is the payload shared by all three password reset
// endpoints. Token and Password are optional at the wire level; each
// endpoint enforces the fields it needs.
type ResetPassword struct {
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
	Password string `json:"password,omitempty"`
}

// Login is the payload for authenticating an administrator.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IDQuery carries a single target account identifier.
type IDQuery struct {
	ID int64 `json:"id"`
}

// ListQuery carries pagination bounds for listing operations.
type ListQuery struct {
	Offset int64 `json:"offset"`
	Limit  int64 `json:"limit"`
}
