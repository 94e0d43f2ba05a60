package auth

import (
	"context"
	"fmt"
	"slices"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/logger"
)

// AuthorizationService holds the ownership, approval and enrollment rules
// shared by the catalog, progress and certificate services.
type AuthorizationService struct {
	userRepo       repositories.IUserRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
) *AuthorizationService {
	return &AuthorizationService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// RequireRole returns denied unless the principal has one of roles
func RequireRole(p models.Principal, denied error, roles ...models.Role) error {
	if slices.Contains(roles, p.Role) {
		return nil
	}
	return denied
}

// OwnedCourse loads a course and checks that mentorID owns it.
// notOwner is returned when the course belongs to someone else.
func (s *AuthorizationService) OwnedCourse(ctx context.Context, mentorID, courseID int64, notOwner error) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.MentorID != mentorID {
		logger.Debug().Int64("mentorID", mentorID).Int64("courseID", courseID).Msg("Course ownership check failed")
		return nil, notOwner
	}
	return course, nil
}

// RequireApprovedMentor checks that the user is a mentor approved by an admin
func (s *AuthorizationService) RequireApprovedMentor(ctx context.Context, mentorID int64) error {
	user, err := s.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrMentorNotApproved
		}
		return fmt.Errorf("error loading mentor: %w", err)
	}
	if user.Role != models.RoleMentor || !user.Approved {
		return apperrors.ErrMentorNotApproved
	}
	return nil
}

// RequireEnrollment returns notEnrolled unless the student is enrolled in the course
func (s *AuthorizationService) RequireEnrollment(ctx context.Context, studentID, courseID int64, notEnrolled error) error {
	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, courseID)
	if err != nil {
		return fmt.Errorf("error checking enrollment: %w", err)
	}
	if !enrolled {
		return notEnrolled
	}
	return nil
}
