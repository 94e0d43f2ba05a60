package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/logger"
)

// IEnrollmentRepository defines the interface for enrollment database operations
type IEnrollmentRepository interface {
	// Create returns apperrors.ErrAlreadyEnrolled if the pair already exists
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	ListCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an enrollment unless the student is already enrolled
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(enrollment.StudentID, enrollment.CourseID).
		Suffix("ON CONFLICT (student_id, course_id) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAlreadyEnrolled
		}
		logger.Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// Exists reports whether the student is enrolled in the course
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error checking enrollment")
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// ListCoursesByStudent returns the courses a student is enrolled in, in enrollment order
func (r *EnrollmentRepository) ListCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("c.id", "c.title", "c.description", "c.mentor_id", "c.created_at").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.created_at ASC", "e.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrolled courses SQL")
		return nil, fmt.Errorf("failed to build enrolled courses query: %w", err)
	}
	return queryCourses(ctx, r.db, sql, args...)
}
