// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-admin-keeper/models"
)

const (
	createAdmin = `INSERT INTO admins (name, email, phone_num, password_hash, meta)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING admin_id, name, email, phone_num, password_hash, meta, created_at;`

	getAdminByID = `SELECT admin_id, name, email, phone_num, password_hash, meta, created_at
    FROM admins
    WHERE admin_id = $1;`

	getAdminByEmail = `SELECT admin_id, name, email, phone_num, password_hash, meta, created_at
    FROM admins
    WHERE email = $1;`

	setAdminPassword = `UPDATE admins SET password_hash = $1 WHERE admin_id = $2;`

	deleteAdminByID = `DELETE FROM admins WHERE admin_id = $1;`

	countAdmins = `SELECT COUNT(*) FROM admins;`

	upsertResetToken = `INSERT INTO reset_tokens (admin_id, token, expires_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (admin_id) DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at;`

	getResetToken = `SELECT admin_id, token, expires_at
    FROM reset_tokens
    WHERE admin_id = $1;`

	deleteResetToken = `DELETE FROM reset_tokens WHERE admin_id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL's
// $-numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListAdminsQuery builds the paged listing SELECT. The reserved root
// account is excluded at the SQL level so it never reaches a caller.
func buildListAdminsQuery(offset, limit int64) (string, []any, error) {
	query, args, err := psql.
		Select("admin_id", "name", "email", "phone_num", "password_hash", "meta", "created_at").
		From("admins").
		Where(sq.Gt{"admin_id": models.RootAdminID}).
		OrderBy("admin_id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateMetaQuery builds the UPDATE statement replacing the whole
// metadata document of an account.
func buildUpdateMetaQuery(adminID int64, metaJSON []byte) (string, []any, error) {
	query, args, err := psql.
		Update("admins").
		Set("meta", metaJSON).
		Where(sq.Eq{"admin_id": adminID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// metaToJSON serialises a metadata list into its JSONB column form.
// A nil list is stored as an empty array, never as NULL.
func metaToJSON(meta []string) ([]byte, error) {
	if meta == nil {
		meta = []string{}
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("error marshaling admin meta: %w", err)
	}

	return data, nil
}

// metaFromJSON parses the JSONB column form back into a metadata list.
func metaFromJSON(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var meta []string
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("error unmarshaling admin meta: %w", err)
	}

	return meta, nil
}
