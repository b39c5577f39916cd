package service

import (
	"testing"

	"github.com/MKhiriev/go-admin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_SuperuserOnlyOperations(t *testing.T) {
	root := models.Admin{AdminID: models.RootAdminID}
	regular := models.Admin{AdminID: 42}

	restricted := []Operation{
		OpCreateAdmin,
		OpUpdateAccesses,
		OpUpdateMeta,
		OpUpdatePassword,
		OpListAdmins,
	}

	for _, op := range restricted {
		require.NoError(t, Authorize(root, op))
		assert.ErrorIs(t, Authorize(regular, op), ErrUnauthorized)
	}
}

func TestAuthorize_AuthenticatedOperations(t *testing.T) {
	regular := models.Admin{AdminID: 42}

	open := []Operation{
		OpCountAdmins,
		OpAdminDetail,
		OpDeleteAdmin,
		OpSelfInfo,
	}

	for _, op := range open {
		assert.NoError(t, Authorize(regular, op))
	}
}

func TestAuthorize_AnonymousDeniedEverywhere(t *testing.T) {
	anonymous := models.Admin{}

	assert.ErrorIs(t, Authorize(anonymous, OpSelfInfo), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(anonymous, OpCreateAdmin), ErrUnauthorized)
}
