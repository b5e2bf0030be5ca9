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

type UserService interface {
	ListUsers(ctx context.Context) ([]*response.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*response.UserResponse, error)

	// GetMe resolves the authenticated user from the context
	GetMe(ctx context.Context) (*response.UserResponse, error)

	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	PatchUser(ctx context.Context, email string, req *request.PatchUserRequest) error
	DeleteUser(ctx context.Context, email string) error

	// UpdateProfile populates the authenticated user's dashboard
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]*response.UserResponse, len(users))
	for i, u := range users {
		out[i] = response.UserToResponse(u)
	}
	return out, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	resp := response.UserToResponse(user)

	// payment methods and received offers live in their own tables;
	// fold them back into the dashboard view
	methods, err := s.repo.PaymentMethod.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	offers, err := s.repo.Promo.ListReceivedByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list received offers: %w", err)
	}

	if len(methods) > 0 || len(offers) > 0 {
		if resp.Dashboard == nil {
			resp.Dashboard = &response.DashboardResponse{}
		}
		for _, pm := range methods {
			resp.Dashboard.PaymentDetails = append(resp.Dashboard.PaymentDetails, response.PaymentMethodToResponse(pm))
		}
		for _, o := range offers {
			resp.Dashboard.PromotionalOffers = append(resp.Dashboard.PromotionalOffers, response.ReceivedOfferToResponse(o))
		}
	}

	return resp, nil
}

func (s *userService) GetMe(ctx context.Context) (*response.UserResponse, error) {
	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrInvalidCredentials)
	}
	return s.GetUserByEmail(ctx, email)
}

// CreateUser is the admin insert path; unlike signup it accepts the
// full account shape.
func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %s", ErrConflict, req.Email)
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 10)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		passwordHash = &h
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserType: entity.UserType(req.UserType),
		Login: entity.Login{
			Email:        req.Email,
			Password:     passwordHash,
			MobileNumber: req.MobileNumber,
			SignedUp:     req.SignedUp,
			GoogleID:     req.GoogleID,
			FacebookID:   req.FacebookID,
		},
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created", zap.String("email", req.Email))

	return response.UserToResponse(user), nil
}

func (s *userService) PatchUser(ctx context.Context, email string, req *request.PatchUserRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	patch := &entity.UserPatch{
		UserType:         req.UserType,
		MobileNumber:     req.MobileNumber,
		MembershipStatus: req.MembershipStatus,
		FavoriteGenre:    req.FavoriteGenre,
		ProfileImage:     req.ProfileImage,
		RewardPoints:     req.RewardPoints,
	}

	if patch.Empty() {
		return fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}

	rows, err := s.repo.User.UpdateFields(ctx, email, patch)
	if err != nil {
		return fmt.Errorf("patch user: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	s.log.Info("User patched", zap.String("email", email))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, email string) error {
	rows, err := s.repo.User.Delete(ctx, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	s.log.Info("User deleted", zap.String("email", email))
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) error {
	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated user", ErrInvalidCredentials)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	dashboard := &entity.Dashboard{
		BasicInfo: entity.BasicInfo{
			FirstName:    req.BasicInfo.FirstName,
			LastName:     req.BasicInfo.LastName,
			MobileNumber: req.BasicInfo.MobileNumber,
			City:         req.BasicInfo.City,
			State:        req.BasicInfo.State,
			Country:      req.BasicInfo.Country,
			DOB:          req.BasicInfo.DOB,
		},
		ProfileImage:     req.ProfileImage,
		Interests:        req.Interests,
		FavoriteGenre:    req.FavoriteGenre,
		MembershipStatus: req.MembershipStatus,
		RewardPoints:     req.RewardPoints,
	}

	rows, err := s.repo.User.UpdateProfile(ctx, email, dashboard)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	s.log.Info("Profile updated", zap.String("email", email))
	return nil
}
