package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/request"
	"movie-mates/internal/dto/response"
	"movie-mates/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error

	// GetUserType resolves the role tag of the authenticated user
	GetUserType(ctx context.Context) (*response.UserTypeResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Login email must be unique
	existing, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %s", ErrConflict, req.Username)
	}

	// 3. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	// 4. Create login-only user document; the dashboard stays empty
	// until the first profile update
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserType: entity.UserTypeCustomer,
		Login: entity.Login{
			Email:    req.Username,
			Password: &hashStr,
			SignedUp: true,
		},
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User signed up", zap.String("email", req.Username))

	return &response.SignupResponse{Username: req.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, req.Username)
	}
	if user.Login.Password == nil {
		// social-login account without a local password
		return nil, fmt.Errorf("%w: incorrect password", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Login.Password), []byte(req.Password)); err != nil {
		s.log.Warn("Login with incorrect password", zap.String("email", req.Username))
		return nil, fmt.Errorf("%w: incorrect password", ErrInvalidCredentials)
	}

	token, err := utils.GenerateToken(user.Login.Email, s.config.JWT)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User logged in", zap.String("email", req.Username))

	return &response.LoginResponse{
		Username:    user.Login.Email,
		AccessToken: token,
	}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	rows, err := s.repo.User.UpdatePassword(ctx, req.Username, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, req.Username)
	}

	s.log.Info("Password reset", zap.String("email", req.Username))
	return nil
}

func (s *authService) GetUserType(ctx context.Context) (*response.UserTypeResponse, error) {
	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrInvalidCredentials)
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	return &response.UserTypeResponse{UserType: int(user.UserType)}, nil
}
