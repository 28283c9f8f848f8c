// Package auth issues staff login tokens and guards the mutating routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/platform/db"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Config struct {
	Enabled           bool          `yaml:"enabled"`
	JWTSecret         string        `yaml:"jwt_secret"`
	TokenTTL          time.Duration `yaml:"token_ttl"`
	BootstrapAdmin    string        `yaml:"bootstrap_admin"`
	BootstrapPassword string        `yaml:"bootstrap_password"`
}

var errBadCredentials = inventory.ErrUnauthenticated("id or password is wrong")

type Service struct {
	db     *db.Conn
	store  *Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(conn *db.Conn, secret []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{db: conn, store: NewStore(), secret: secret, ttl: ttl, now: time.Now}
}

func (s *Service) Secret() []byte { return s.secret }

// Login returns a signed HS256 token carrying sub, role and exp.
func (s *Service) Login(ctx context.Context, id, password string) (string, error) {
	acct, err := s.store.GetByID(ctx, s.db, id)
	if err != nil {
		return "", err
	}
	if acct == nil {
		return "", errBadCredentials
	}
	if acct.IsDisabled {
		return "", inventory.ErrUnauthenticated("account disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", errBadCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  acct.ID,
		"role": acct.Role,
		"exp":  s.now().Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Register(ctx context.Context, id, password, role string) error {
	id = strings.TrimSpace(id)
	switch {
	case id == "":
		return inventory.ErrInvalid("id required")
	case len(password) < 8:
		return inventory.ErrInvalid("password must be at least 8 characters")
	case role != RoleAdmin && role != RoleStaff:
		return inventory.ErrInvalid("role must be admin or staff")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		exists, err := s.store.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if exists != nil {
			return inventory.ErrConflict("id already exists")
		}
		err = s.store.Create(ctx, tx, &Account{ID: id, PasswordHash: string(hash), Role: role})
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return inventory.ErrConflict("id already exists")
		}
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return inventory.ErrNotFound("account not found")
	}
	return nil
}

// EnsureBootstrap creates the first admin when the accounts table is empty.
// It reports whether an account was created.
func (s *Service) EnsureBootstrap(ctx context.Context, id, password string) (bool, error) {
	if id == "" {
		return false, nil
	}
	n, err := s.store.Count(ctx, s.db)
	if err != nil || n > 0 {
		return false, err
	}
	if err := s.Register(ctx, id, password, RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
