package model

// Admin represents an operator account with console access. Passwords are
// stored as bcrypt hashes. The Token column holds the current session token,
// or NULL when the admin is logged out; at most one session is live per admin.
type Admin struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Email        string  `json:"email" db:"email"`
	Gender       string  `json:"gender" db:"gender"`
	PasswordHash string  `json:"-" db:"password_hash"` // bcrypt hash, never expose
	Token        *string `json:"-" db:"token"`
	IsActive     bool    `json:"is_active" db:"is_active"`
	IsDeleted    bool    `json:"is_deleted" db:"is_deleted"`
	CreatedAt    int64   `json:"created_at" db:"created_at"` // seconds since epoch
	CreatedBy    string  `json:"created_by" db:"created_by"`
}
