package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/admindesk/admindesk/internal/model"
	"github.com/admindesk/admindesk/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrTokenInvalid       = errors.New("token invalid")
)

// DefaultTokenTTL is the session lifetime used when no override is configured.
const DefaultTokenTTL = 1 * time.Hour

// AuthService owns the admin session lifecycle: credential hashing, token
// issuance and verification, and the sign-up/log-in/log-out flows. The
// signing secret is injected at construction and never read from ambient
// state afterwards.
type AuthService struct {
	store  *store.Store
	hasher *Hasher
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService. The secret must be non-empty;
// callers are expected to treat a failure here as fatal at startup.
func NewAuthService(st *store.Store, secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{
		store:  st,
		hasher: NewHasher(),
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

type sessionClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed session token embedding the admin identity,
// expiring one TTL from now.
func (s *AuthService) IssueToken(adminID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    "admindesk",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseToken checks the token's signature and expiry and returns the embedded
// admin id. It says nothing about whether the session is still live.
func (s *AuthService) parseToken(tokenStr string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}
	return claims.AdminID, nil
}

// SignUp creates a new admin account and returns its id. The password is
// hashed before anything touches the store. Returns store.ErrDuplicateEmail
// when the email is already registered.
func (s *AuthService) SignUp(ctx context.Context, name, email, gender, password string) (string, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	admin := &model.Admin{
		ID:           id,
		Name:         name,
		Email:        email,
		Gender:       gender,
		PasswordHash: digest,
		IsActive:     true,
		IsDeleted:    false,
		CreatedAt:    time.Now().Unix(),
		CreatedBy:    id, // self-registered
	}

	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		return "", err
	}
	return id, nil
}

// LogIn verifies the credentials, issues a fresh session token, and persists
// it on the admin record, replacing any prior session for that admin.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (string, error) {
	admin, err := s.store.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAdminNotFound
		}
		return "", fmt.Errorf("look up admin: %w", err)
	}

	if !s.hasher.Verify(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(admin.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if err := s.store.SetAdminToken(ctx, admin.ID, &token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// LogOut clears the stored session for the admin holding token. Returns
// ErrAdminNotFound when no admin holds that token; a second log-out with the
// same token lands here, which callers should not treat as fatal.
func (s *AuthService) LogOut(ctx context.Context, token string) error {
	admin, err := s.store.GetAdminByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("look up session: %w", err)
	}

	if err := s.store.SetAdminToken(ctx, admin.ID, nil); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// VerifyToken accepts a request token only if both checks pass: the token's
// signature and expiry verify, and it still matches the session stored on the
// admin record it names. A token that survives the first check but has been
// logged out (or replaced by a newer log-in) fails the second.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*model.Admin, error) {
	adminID, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	admin, err := s.store.GetAdminByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("look up session: %w", err)
	}

	if admin.ID != adminID {
		return nil, ErrTokenInvalid
	}
	return admin, nil
}
