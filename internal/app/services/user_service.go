package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/auth"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

// UserService exposes profiles and admin user management
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	ListUsers(ctx context.Context, p models.Principal) ([]*models.User, error)
	ApproveMentor(ctx context.Context, p models.Principal, mentorID int64) (*models.User, error)
}

type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userServiceImpl) ListUsers(ctx context.Context, p models.Principal) ([]*models.User, error) {
	if err := auth.RequireRole(p, apperrors.ErrAdminsOnly, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

// ApproveMentor marks a mentor as approved. Non-mentors are reported as not found.
func (s *userServiceImpl) ApproveMentor(ctx context.Context, p models.Principal, mentorID int64) (*models.User, error) {
	if err := auth.RequireRole(p, apperrors.ErrAdminsOnly, models.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleMentor {
		return nil, apperrors.ErrMentorNotFound
	}

	updated, err := s.userRepo.SetApproved(ctx, mentorID, true)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("mentorID", mentorID).Msg("Mentor approved")
	return updated, nil
}
