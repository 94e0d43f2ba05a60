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

// IProgressRepository defines the interface for chapter progress database operations
type IProgressRepository interface {
	// Create returns apperrors.ErrAlreadyCompleted if the chapter was already completed
	Create(ctx context.Context, progress *models.ChapterProgress) error
	Exists(ctx context.Context, studentID, chapterID int64) (bool, error)
	CountCompletedInCourse(ctx context.Context, studentID, courseID int64) (int, error)
	ListCompletedChapterIDs(ctx context.Context, studentID, courseID int64) ([]int64, error)
}

// ProgressRepository handles chapter progress database operations
type ProgressRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a chapter completion
func (r *ProgressRepository) Create(ctx context.Context, progress *models.ChapterProgress) error {
	sql, args, err := r.sb.Insert("chapter_progress").
		Columns("student_id", "chapter_id").
		Values(progress.StudentID, progress.ChapterID).
		Suffix("ON CONFLICT (student_id, chapter_id) DO NOTHING RETURNING id, completed_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create progress SQL")
		return fmt.Errorf("failed to build create progress query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&progress.ID, &progress.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAlreadyCompleted
		}
		logger.Error().Err(err).
			Int64("studentID", progress.StudentID).
			Int64("chapterID", progress.ChapterID).
			Msg("Error executing create progress query")
		return fmt.Errorf("error creating chapter progress: %w", err)
	}
	return nil
}

// Exists reports whether the student completed the chapter
func (r *ProgressRepository) Exists(ctx context.Context, studentID, chapterID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM chapter_progress WHERE student_id = $1 AND chapter_id = $2)`,
		studentID, chapterID).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("chapterID", chapterID).Msg("Error checking chapter progress")
		return false, fmt.Errorf("error checking chapter progress: %w", err)
	}
	return exists, nil
}

func (r *ProgressRepository) completedInCourse(columns ...string) squirrel.SelectBuilder {
	return r.sb.Select(columns...).
		From("chapter_progress cp").
		Join("chapters ch ON ch.id = cp.chapter_id")
}

// CountCompletedInCourse counts the chapters of a course the student completed
func (r *ProgressRepository) CountCompletedInCourse(ctx context.Context, studentID, courseID int64) (int, error) {
	sql, args, err := r.completedInCourse("COUNT(*)").
		Where(squirrel.Eq{"cp.student_id": studentID, "ch.course_id": courseID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count progress query: %w", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error counting completed chapters")
		return 0, fmt.Errorf("error counting completed chapters: %w", err)
	}
	return n, nil
}

// ListCompletedChapterIDs returns the completed chapter IDs of a course in completion order
func (r *ProgressRepository) ListCompletedChapterIDs(ctx context.Context, studentID, courseID int64) ([]int64, error) {
	sql, args, err := r.completedInCourse("cp.chapter_id").
		Where(squirrel.Eq{"cp.student_id": studentID, "ch.course_id": courseID}).
		OrderBy("cp.completed_at ASC", "cp.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build completed chapters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error querying completed chapters")
		return nil, fmt.Errorf("error querying completed chapters: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		logger.Error().Err(err).Msg("Error collecting completed chapter IDs")
		return nil, fmt.Errorf("error collecting completed chapters: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
