package store

import (
	"fmt"
	"strings"
)

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			gender VARCHAR(32) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			token VARCHAR(512),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at BIGINT NOT NULL,
			created_by VARCHAR(36) NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			age INTEGER NOT NULL DEFAULT 0,
			gender VARCHAR(32) NOT NULL DEFAULT '',
			country VARCHAR(128) NOT NULL DEFAULT '',
			city VARCHAR(128) NOT NULL DEFAULT '',
			company VARCHAR(255) NOT NULL DEFAULT ''
		)`,

		`CREATE INDEX idx_admins_token ON admins(token)`,
		`CREATE INDEX idx_users_country_city ON users(country, city)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			// MySQL has no CREATE INDEX IF NOT EXISTS; treat re-creation of an
			// existing index as a no-op so migrations stay idempotent.
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate") {
				continue
			}
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
