package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kmorales-dev/closetwish-backend/internal/users"
	pkgauth "github.com/kmorales-dev/closetwish-backend/pkg/auth"
	"github.com/kmorales-dev/closetwish-backend/pkg/auth/session"
	"github.com/kmorales-dev/closetwish-backend/pkg/config"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
	"github.com/kmorales-dev/closetwish-backend/pkg/security"
	"gorm.io/gorm"
)

const (
	emailExistsMessage        = "Email already exists."
	invalidCredentialsMessage = "Invalid credentials"
	userNotFoundMessage       = "User not found"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error
	DeleteByEmail(ctx context.Context, email string) error
	GetUser(ctx context.Context, id uint) (*users.UserDTO, error)
}

type sessionManager interface {
	Mark(ctx context.Context, accessID string, userID uint) error
	Clear(ctx context.Context, accessID string) error
}

type service struct {
	db          *db.Client
	userRepo    *users.Repository
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
}

// ServiceParams bundles the dependencies required to build an auth service.
// Session may be nil; tokens are self-contained and the marker store only
// exists so logout has something to revoke.
type ServiceParams struct {
	DB             *db.Client
	UserRepo       *users.Repository
	Session        sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	Logger         *logger.Logger
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repo required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{
		db:          params.DB,
		userRepo:    params.UserRepo,
		session:     params.Session,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		logg:        params.Logger,
	}, nil
}

// Register stores a new account and issues its first token. A taken email is
// a conflict regardless of whether it was seen before the insert or raced it.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, emailExistsMessage)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup email")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var user *models.User
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		created, err := users.NewRepository(tx).Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, emailExistsMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "user registered")
	return s.issueFor(ctx, user)
}

// Login verifies the credentials and issues a fresh token. Unknown emails and
// wrong passwords are deliberately indistinguishable.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup email")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.issueFor(ctx, user)
}

// Logout drops the server-side session marker when one exists. It never
// fails: a missing, expired, or garbled token still logs the caller out.
func (s *service) Logout(ctx context.Context, token string) error {
	if s.session == nil || strings.TrimSpace(token) == "" {
		return nil
	}
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, token)
	if err != nil || claims.ID == "" {
		return nil
	}
	if err := s.session.Clear(ctx, claims.ID); err != nil {
		s.logg.Warn(ctx, "failed to clear session marker")
	}
	return nil
}

// DeleteByEmail removes the account outright.
func (s *service) DeleteByEmail(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, userNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup email")
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		return users.NewRepository(tx).Delete(ctx, user.ID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete user")
	}
	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "user deleted")
	return nil
}

// GetUser returns the public shape for the account.
func (s *service) GetUser(ctx context.Context, id uint) (*users.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, userNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return users.FromModel(user), nil
}

func (s *service) issueFor(ctx context.Context, user *models.User) (*AuthResponse, error) {
	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	if s.session != nil {
		if err := s.session.Mark(ctx, accessID, user.ID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record session marker")
		}
	}
	return &AuthResponse{
		Token: token,
		User:  *users.FromModel(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
