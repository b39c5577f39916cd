package service

import (
	"github.com/MKhiriev/go-admin-keeper/models"
)

// Operation enumerates the administrative operations subject to the
// authorization policy. The password reset flow is deliberately absent:
// it runs pre-authentication and is never authorized here.
type Operation int

const (
	// OpCreateAdmin registers a new administrator account.
	OpCreateAdmin Operation = iota
	// OpUpdateAccesses replaces the access labels of a target account.
	OpUpdateAccesses
	// OpUpdateMeta replaces the full metadata list of a target account.
	OpUpdateMeta
	// OpUpdatePassword sets a new password for a target account by id.
	OpUpdatePassword
	// OpListAdmins pages through the account listing.
	OpListAdmins
	// OpCountAdmins returns the total account count.
	OpCountAdmins
	// OpAdminDetail reads a single account by id.
	OpAdminDetail
	// OpDeleteAdmin removes a target account.
	OpDeleteAdmin
	// OpSelfInfo returns the acting identity's own record.
	OpSelfInfo
)

// superuserOnly marks the operations reserved to the root account.
var superuserOnly = map[Operation]bool{
	OpCreateAdmin:    true,
	OpUpdateAccesses: true,
	OpUpdateMeta:     true,
	OpUpdatePassword: true,
	OpListAdmins:     true,
}

// Authorize decides whether the acting identity may perform op.
// It classifies only: no side effects, no store access. On denial the
// caller must abort the operation before any store mutation.
//
// Rules, first match wins:
//  1. Superuser-only operations require the root role.
//  2. Every other operation requires an authenticated identity.
func Authorize(acting models.Admin, op Operation) error {
	if acting.AdminID == 0 {
		return ErrUnauthorized
	}

	if superuserOnly[op] && !acting.IsRoot() {
		return ErrUnauthorized
	}

	return nil
}
