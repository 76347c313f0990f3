// internal/users/users.go
//
// Player accounts: creation with validated usernames, bcrypt password
// hashes, and lookups by username or ID.

package users

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/guessword/internal/db"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrNotFound      = errors.New("user not found")
)

// ValidationError rejects a signup before it reaches the database.
// Its text is safe to show to the client.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// User matches the users table shape.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store reads and writes users.
type Store struct {
	db   *sql.DB
	cost int
}

// NewStore returns a Store hashing with bcrypt.DefaultCost.
func NewStore(sqlDB *sql.DB) *Store {
	return &Store{db: sqlDB, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost (tests use bcrypt.MinCost).
func (s *Store) WithCost(cost int) *Store {
	s.cost = cost
	return s
}

// Create validates input, checks uniqueness, hashes the password and inserts a new user.
func (s *Store) Create(ctx context.Context, username, pw string) (*User, error) {
	username = normalizeUsername(username)
	if err := validateSignup(username, pw); err != nil {
		return nil, err
	}
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           GenID(),
		Username:     username,
		PasswordHash: string(h),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// insert writes u. A concurrent signup that won the race on the same
// name surfaces as ErrUsernameTaken.
func (s *Store) insert(ctx context.Context, u *User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt.Format(db.TimeLayout))
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrUsernameTaken
	}
	return err
}

// FindByUsername loads a user case-insensitively.
func (s *Store) FindByUsername(ctx context.Context, username string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at
	                                  FROM users WHERE lower(username)=lower(?)`, normalizeUsername(username))
	return scanUser(row)
}

// FindByID loads a user by ID.
func (s *Store) FindByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at
	                                  FROM users WHERE id=?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var created string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(db.TimeLayout, created)
	return &u, nil
}

// CheckPassword is a bcrypt verifier.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return ValidationError("username must be 3-24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ValidationError("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 72 {
		return ValidationError("password must be 8-72 chars")
	}
	return nil
}

// GenID creates a 22-char URL-safe, crypto-random identifier (no padding).
func GenID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
