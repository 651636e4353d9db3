package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/admindesk/admindesk/internal/model"
)

// ListUsers returns a page of the user directory as name+email summaries,
// ordered by name for stable pagination.
func (s *Store) ListUsers(ctx context.Context, offset, limit int) ([]model.UserSummary, error) {
	q := s.db.Rebind("SELECT name, email FROM users ORDER BY name LIMIT ? OFFSET ?")
	users := []model.UserSummary{}
	if err := s.db.SelectContext(ctx, &users, q, limit, offset); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	q := s.db.Rebind("SELECT * FROM users WHERE id = ?")
	if err := s.db.GetContext(ctx, &user, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// FilterUsers returns full user records whose country and city each contain
// the corresponding fragment, compared case-insensitively. An empty fragment
// matches everything, so FilterUsers(ctx, "", "") returns the whole directory.
func (s *Store) FilterUsers(ctx context.Context, country, city string) ([]model.User, error) {
	q := s.db.Rebind(`SELECT * FROM users
		WHERE LOWER(country) LIKE ? AND LOWER(city) LIKE ?
		ORDER BY name`)
	users := []model.User{}
	err := s.db.SelectContext(ctx, &users, q, contains(country), contains(city))
	if err != nil {
		return nil, fmt.Errorf("filter users: %w", err)
	}
	return users, nil
}

// SearchUsers returns profile projections of users whose name or email
// contains the query fragment, compared case-insensitively. A hit on either
// field counts as a match.
func (s *Store) SearchUsers(ctx context.Context, query string) ([]model.UserProfile, error) {
	q := s.db.Rebind(`SELECT name, email, age, gender, country, city, company FROM users
		WHERE LOWER(name) LIKE ? OR LOWER(email) LIKE ?
		ORDER BY name`)
	frag := contains(query)
	users := []model.UserProfile{}
	if err := s.db.SelectContext(ctx, &users, q, frag, frag); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// InsertUser adds a record to the user directory. Only the seed tooling and
// tests write here; the console itself treats the directory as read-only.
func (s *Store) InsertUser(ctx context.Context, user *model.User) error {
	const q = `INSERT INTO users (id, name, email, age, gender, country, city, company)
		VALUES (:id, :name, :email, :age, :gender, :country, :city, :company)`
	if _, err := s.db.NamedExecContext(ctx, q, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// CountUsers returns the total number of directory records.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// contains builds a lower-cased LIKE fragment matching anywhere in the value.
func contains(fragment string) string {
	return "%" + strings.ToLower(fragment) + "%"
}
