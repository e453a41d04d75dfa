package user

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, user *User) error {
	user.Id = pkg.GenerateULIDObject()

	now := pkg.SetTimestamps()
	user.CreatedAt = now
	user.UpdatedAt = now

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	user.Password = string(hashedPassword)

	return s.Repository.Create(ctx, user)
}

func (s *Service) Update(ctx context.Context, user *User) error {
	return s.Repository.Update(ctx, user)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, email)
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.GetByID(ctx, userID)
	return err
}

func (s *Service) UpdateName(ctx context.Context, userID ulid.ULID, name string) error {
	if strings.TrimSpace(name) == "" {
		return appErrors.NewValidationError("name", "must not be empty")
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Name = strings.TrimSpace(name)
	user.UpdatedAt = pkg.SetTimestamps()

	return s.Repository.Update(ctx, user)
}

func (s *Service) UpdatePassword(ctx context.Context, userID ulid.ULID, currentPassword, newPassword string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = pkg.SetTimestamps()

	return s.Repository.Update(ctx, user)
}

// UserServiceAdapter narrows Service for consumers that only need existence
// checks, keeping domain packages decoupled from the full user API.
type UserServiceAdapter struct {
	service *Service
}

func NewUserServiceAdapter(service *Service) *UserServiceAdapter {
	return &UserServiceAdapter{service: service}
}

func (a *UserServiceAdapter) Exists(ctx context.Context, userID ulid.ULID) error {
	return a.service.Exists(ctx, userID)
}
