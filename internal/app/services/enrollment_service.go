package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/auth"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

// EnrollmentService manages course membership
type EnrollmentService interface {
	Enroll(ctx context.Context, p models.Principal, courseID int64) error
	EnrolledCourses(ctx context.Context, p models.Principal) ([]models.EnrolledCourse, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
	progress       ProgressService
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	courseRepo repositories.ICourseRepository,
	progress ProgressService,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		progress:       progress,
		logger:         logger,
	}
}

// Enroll adds the student to the course. A second enrollment is a conflict.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, p models.Principal, courseID int64) error {
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Only students can enroll"), models.RoleStudent); err != nil {
		return err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	enrollment := &models.Enrollment{StudentID: p.UserID, CourseID: courseID}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", p.UserID).Int64("courseID", courseID).Msg("Student enrolled")
	return nil
}

// EnrolledCourses lists the student's courses with progress computed at read time
func (s *enrollmentServiceImpl) EnrolledCourses(ctx context.Context, p models.Principal) ([]models.EnrolledCourse, error) {
	if err := auth.RequireRole(p, apperrors.ErrStudentsOnly, models.RoleStudent); err != nil {
		return nil, err
	}

	courses, err := s.enrollmentRepo.ListCoursesByStudent(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]models.EnrolledCourse, 0, len(courses))
	for _, c := range courses {
		progress, err := s.progress.CourseProgress(ctx, p, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.EnrolledCourse{
			Course:    *c,
			Progress:  progress.Percent,
			Completed: progress.Complete(),
		})
	}
	return out, nil
}
