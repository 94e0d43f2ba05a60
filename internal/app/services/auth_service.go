package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/auth"
)

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, role models.Role) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// CreateAdmin creates an ADMIN account; it fails with a conflict if the email is taken
	CreateAdmin(ctx context.Context, name, email, password string) (*models.User, error)
}

type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a STUDENT or MENTOR account. Mentors start unapproved.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, role models.Role) (*models.User, error) {
	if role != models.RoleStudent && role != models.RoleMentor {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}
	return s.createUser(ctx, req.Name, req.Email, req.Password, role)
}

func (s *authServiceImpl) createUser(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewBadRequestError("Name, email and password required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	// a concurrent registration with the same email surfaces here as a conflict
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User registered")
	return user, nil
}

// Login checks credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Login rejected: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Role:    user.Role,
		UserID:  user.ID,
		Message: "Login successful",
	}, nil
}

// CreateAdmin creates an ADMIN account
func (s *authServiceImpl) CreateAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := s.createUser(ctx, name, email, password, models.RoleAdmin)
	if apperrors.Is(err, apperrors.ErrConflict) {
		return nil, apperrors.NewConflictError("Admin already exists")
	}
	return user, err
}
