package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pwalen/vitalwiki"
)

// Compile-time interface verification.
var _ vitalwiki.SessionService = (*AuthService)(nil)

// AuthService implements vitalwiki.SessionService on the local database.
// It backs the built-in server mode; remote deployments talk to the same
// contract over HTTP instead.
type AuthService struct {
	db *DB
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *DB) *AuthService {
	return &AuthService{db: db}
}

// hashPassword returns the hex SHA-256 digest of password.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account after validating the credentials.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return vitalwiki.Errorf(vitalwiki.EINVALID, "username required")
	}
	if len(username) < 2 {
		return vitalwiki.Errorf(vitalwiki.EINVALID, "username too short")
	}
	if len(password) < 4 {
		return vitalwiki.Errorf(vitalwiki.EINVALID, "password must be at least 4 characters")
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return vitalwiki.Errorf(vitalwiki.ECONFLICT, "username already taken")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
	`, username, hashPassword(password), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Login verifies credentials and creates a session, returning its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE username = ?`, username).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", vitalwiki.Errorf(vitalwiki.EUNAUTHORIZED, "invalid username or password")
	}
	if err != nil {
		return "", err
	}
	if hash != hashPassword(password) {
		return "", vitalwiki.Errorf(vitalwiki.EUNAUTHORIZED, "invalid username or password")
	}

	token := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, username, created_at)
		VALUES (?, ?, ?)
	`, token, username, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout removes the session. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// CurrentUser resolves a session token to its username.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", vitalwiki.Errorf(vitalwiki.EUNAUTHORIZED, "not logged in")
	}
	var username string
	err := s.db.QueryRowContext(ctx, `SELECT username FROM sessions WHERE token = ?`, token).Scan(&username)
	if err == sql.ErrNoRows {
		return "", vitalwiki.Errorf(vitalwiki.EUNAUTHORIZED, "session expired")
	}
	if err != nil {
		return "", err
	}
	return username, nil
}
