package auth

import (
	"context"

	"google.golang.org/api/idtoken"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type Service struct {
	Repository     user.Repository
	UserService    *user.Service
	GoogleClientID string
}

func NewService(
	repo user.Repository,
	userSvc *user.Service,
	googleClientID string,
) *Service {
	return &Service{
		Repository:     repo,
		UserService:    userSvc,
		GoogleClientID: googleClientID,
	}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Repository.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Register(ctx context.Context, u *user.User) error {
	exists, err := s.emailExists(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.ErrEmailAlreadyExists
	}
	if err := PasswordRequirements(u.Password); err != nil {
		return err
	}
	return s.UserService.Create(ctx, u)
}

// GoogleLogin validates a Google ID token and signs the user in, creating the
// account on first login.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.GoogleClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google sign-in is not configured")
	}

	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Google credential not provided")
	}

	payload, err := idtoken.Validate(ctx, credential, s.GoogleClientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Google token could not be validated").WithError(err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, appErrors.NewAuthError("EMAIL_MISSING", "Email not present in Google token")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = "Google User"
	}

	entity, err := s.Repository.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			password, err := generateSecurePassword()
			if err != nil {
				return nil, err
			}

			newUser := user.User{
				Name:     name,
				Email:    email,
				Password: password,
			}

			if err := s.UserService.Create(ctx, &newUser); err != nil {
				return nil, err
			}

			return &newUser, nil
		}
		return nil, err
	}

	return entity, nil
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	if appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, appErr
}
