package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/db"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/logger"
)

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]*models.Course, error)
	// Delete removes the course with its chapters, their progress rows,
	// enrollments and certificates, all or nothing.
	Delete(ctx context.Context, id int64) error
}

var courseColumns = []string{"id", "title", "description", "mentor_id", "created_at"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.MentorID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a course and fills its ID and CreatedAt
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "mentor_id").
		Values(course.Title, course.Description, course.MentorID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("mentorID", course.MentorID).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}

// List returns all courses ordered by ID
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, r.sb.Select(courseColumns...).From("courses").OrderBy("id ASC"))
}

// ListByMentor returns the courses owned by a mentor
func (r *CourseRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*models.Course, error) {
	return r.list(ctx, r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"mentor_id": mentorID}).
		OrderBy("id ASC"))
}

func (r *CourseRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}
	return queryCourses(ctx, r.db, sql, args...)
}

// Delete removes a course and everything that hangs off it in one transaction
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	steps := []squirrel.DeleteBuilder{
		r.sb.Delete("chapter_progress").Where(squirrel.Expr("chapter_id IN (SELECT id FROM chapters WHERE course_id = ?)", id)),
		r.sb.Delete("chapters").Where(squirrel.Eq{"course_id": id}),
		r.sb.Delete("enrollments").Where(squirrel.Eq{"course_id": id}),
		r.sb.Delete("certificates").Where(squirrel.Eq{"course_id": id}),
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, step := range steps {
			sql, args, err := step.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build course cascade query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				logger.Error().Err(err).Int64("courseID", id).Str("sql", sql).Msg("Error deleting course dependents")
				return fmt.Errorf("error deleting course dependents: %w", err)
			}
		}

		sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete course query: %w", err)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Int64("courseID", id).Msg("Error deleting course")
			return fmt.Errorf("error deleting course: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}
		return nil
	})
}

// querier is the read side shared by *pgxpool.Pool and pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryCourses(ctx context.Context, q querier, sql string, args ...any) ([]*models.Course, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}
