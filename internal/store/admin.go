package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/admindesk/admindesk/internal/model"
)

// CreateAdmin inserts a new admin account. The caller is responsible for
// populating every field, including ID and CreatedAt. Returns
// ErrDuplicateEmail when the email is already taken.
func (s *Store) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	const q = `INSERT INTO admins
		(id, name, email, gender, password_hash, token, is_active, is_deleted, created_at, created_by)
		VALUES
		(:id, :name, :email, :gender, :password_hash, :token, :is_active, :is_deleted, :created_at, :created_by)`

	if _, err := s.db.NamedExecContext(ctx, q, admin); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetAdminByEmail returns an admin by email address.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	q := s.db.Rebind("SELECT * FROM admins WHERE email = ? AND is_deleted = FALSE")
	if err := s.db.GetContext(ctx, &admin, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return &admin, nil
}

// GetAdminByToken returns the admin whose stored session token exactly
// matches token. Admins that are logged out hold a NULL token and never match.
func (s *Store) GetAdminByToken(ctx context.Context, token string) (*model.Admin, error) {
	var admin model.Admin
	q := s.db.Rebind("SELECT * FROM admins WHERE token = ? AND is_deleted = FALSE")
	if err := s.db.GetContext(ctx, &admin, q, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by token: %w", err)
	}
	return &admin, nil
}

// SetAdminToken stores the session token for an admin, overwriting any prior
// value. Pass nil to clear the token on log-out.
func (s *Store) SetAdminToken(ctx context.Context, id string, token *string) error {
	q := s.db.Rebind("UPDATE admins SET token = ? WHERE id = ?")
	result, err := s.db.ExecContext(ctx, q, token, id)
	if err != nil {
		return fmt.Errorf("set admin token: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set admin token rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAdmins returns all admin accounts, including soft-deleted ones.
func (s *Store) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := s.db.SelectContext(ctx, &admins, "SELECT * FROM admins ORDER BY email"); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// HasAnyAdmin reports whether at least one admin account exists. Used for
// first-run detection so serve can hint at the sign-up flow.
func (s *Store) HasAnyAdmin(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admins"); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return count > 0, nil
}
