package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/config"
	"github.com/lowkeylegends/storefront-backend/pkg/db"
	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/security"
)

// Input carries the fields accepted when registering an account.
type Input struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	Phone          string
	MarketingOptIn bool
}

// Service owns account records. Password material never leaves this package
// unhashed.
type Service interface {
	Create(ctx context.Context, input Input) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

type service struct {
	repo     UserRepository
	password config.PasswordConfig
}

func NewService(repo UserRepository, password config.PasswordConfig) Service {
	return &service{repo: repo, password: password}
}

func (s *service) Create(ctx context.Context, input Input) (*models.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create user")
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   hash,
		FirstName:      optional(input.FirstName),
		LastName:       optional(input.LastName),
		Phone:          optional(input.Phone),
		MarketingOptIn: input.MarketingOptIn,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create user")
	}
	return user, nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load user")
	}
	return user, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load user")
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
