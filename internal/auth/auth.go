package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/db"
)

// ErrUnauthenticated is returned for unknown accounts and wrong
// passwords alike.
var ErrUnauthenticated = errors.New("unauthenticated")

// Principal identifies a verified admin account.
type Principal struct {
	ID       uint
	Username string
}

// Authenticator verifies admin credentials. Implementations are
// supplied at construction time; nothing in the core hardcodes
// credentials.
type Authenticator interface {
	Verify(username, password string) (*Principal, error)
}

// DBAuthenticator checks credentials against bcrypt-hashed user rows.
type DBAuthenticator struct {
	db *gorm.DB
}

// NewDBAuthenticator returns an Authenticator backed by the users table.
func NewDBAuthenticator(gdb *gorm.DB) *DBAuthenticator {
	return &DBAuthenticator{db: gdb}
}

// Verify looks up the account and compares the bcrypt hash.
func (a *DBAuthenticator) Verify(username, password string) (*Principal, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" || password == "" {
		return nil, ErrUnauthenticated
	}

	var user db.User
	if err := a.db.Where("username = ?", trimmed).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthenticated
	}

	return &Principal{ID: user.ID, Username: user.Username}, nil
}
