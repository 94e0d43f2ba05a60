package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/auth"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

// CourseService handles the course catalog
type CourseService interface {
	CreateCourse(ctx context.Context, p models.Principal, title, description string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	MyCourses(ctx context.Context, p models.Principal) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, p models.Principal, id int64) error
}

type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	authz      *auth.AuthorizationService
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, authz *auth.AuthorizationService, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo, authz: authz, logger: logger}
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, p models.Principal, title, description string) (*models.Course, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, apperrors.NewBadRequestError("Title and description required")
	}
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Only mentors can create courses"), models.RoleMentor); err != nil {
		return nil, err
	}

	course := &models.Course{Title: title, Description: description, MentorID: p.UserID}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("courseID", course.ID).Int64("mentorID", p.UserID).Msg("Course created")
	return course, nil
}

func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.List(ctx)
}

func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *courseServiceImpl) MyCourses(ctx context.Context, p models.Principal) ([]*models.Course, error) {
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Only mentors can view their courses"), models.RoleMentor); err != nil {
		return nil, err
	}
	return s.courseRepo.ListByMentor(ctx, p.UserID)
}

// DeleteCourse removes an owned course and all of its chapters, progress,
// enrollments and certificates.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, p models.Principal, id int64) error {
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Only mentors can delete courses"), models.RoleMentor); err != nil {
		return err
	}
	if _, err := s.authz.OwnedCourse(ctx, p.UserID, id, apperrors.ErrCourseDeleteOwner); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseID", id).Int64("mentorID", p.UserID).Msg("Course deleted")
	return nil
}
