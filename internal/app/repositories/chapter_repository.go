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

// IChapterRepository defines the interface for chapter database operations
type IChapterRepository interface {
	Create(ctx context.Context, chapter *models.Chapter) error
	GetByID(ctx context.Context, id int64) (*models.Chapter, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Chapter, error)
	CountByCourse(ctx context.Context, courseID int64) (int, error)
	// Delete removes a chapter; its progress rows go with it
	Delete(ctx context.Context, id int64) error
}

var chapterColumns = []string{"id", "title", "content", "course_id", "created_at"}

// ChapterRepository handles chapter database operations
type ChapterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewChapterRepository creates a new ChapterRepository
func NewChapterRepository(db *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanChapter(row pgx.Row) (*models.Chapter, error) {
	ch := &models.Chapter{}
	if err := row.Scan(&ch.ID, &ch.Title, &ch.Content, &ch.CourseID, &ch.CreatedAt); err != nil {
		return nil, err
	}
	return ch, nil
}

// Create inserts a chapter and fills its ID and CreatedAt
func (r *ChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	sql, args, err := r.sb.Insert("chapters").
		Columns("title", "content", "course_id").
		Values(chapter.Title, chapter.Content, chapter.CourseID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create chapter SQL")
		return fmt.Errorf("failed to build create chapter query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&chapter.ID, &chapter.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("courseID", chapter.CourseID).Msg("Error executing create chapter query")
		return fmt.Errorf("error creating chapter: %w", err)
	}
	return nil
}

// GetByID retrieves a chapter by ID
func (r *ChapterRepository) GetByID(ctx context.Context, id int64) (*models.Chapter, error) {
	sql, args, err := r.sb.Select(chapterColumns...).
		From("chapters").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get chapter SQL")
		return nil, fmt.Errorf("failed to build get chapter query: %w", err)
	}

	ch, err := scanChapter(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChapterNotFound
		}
		logger.Error().Err(err).Int64("chapterID", id).Msg("Error scanning chapter row")
		return nil, fmt.Errorf("error getting chapter by ID: %w", err)
	}
	return ch, nil
}

// ListByCourse returns the chapters of a course, oldest first
func (r *ChapterRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Chapter, error) {
	sql, args, err := r.sb.Select(chapterColumns...).
		From("chapters").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list chapters SQL")
		return nil, fmt.Errorf("failed to build list chapters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list chapters query")
		return nil, fmt.Errorf("error querying chapters: %w", err)
	}
	defer rows.Close()

	chapters := []*models.Chapter{}
	for rows.Next() {
		ch, err := scanChapter(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning chapter row")
			return nil, fmt.Errorf("error scanning chapter row: %w", err)
		}
		chapters = append(chapters, ch)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating chapter rows")
		return nil, fmt.Errorf("error iterating chapter rows: %w", err)
	}
	return chapters, nil
}

// CountByCourse returns the number of chapters in a course
func (r *ChapterRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("chapters").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count chapters query: %w", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error counting chapters")
		return 0, fmt.Errorf("error counting chapters: %w", err)
	}
	return n, nil
}

// Delete removes a chapter by ID
func (r *ChapterRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("chapters").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete chapter query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterID", id).Msg("Error deleting chapter")
		return fmt.Errorf("error deleting chapter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrChapterNotFound
	}
	return nil
}
