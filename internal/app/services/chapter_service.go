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

// ChapterService manages the chapters of a course
type ChapterService interface {
	AddChapter(ctx context.Context, p models.Principal, courseID int64, title, content string) (*models.Chapter, error)
	ListChapters(ctx context.Context, p models.Principal, courseID int64) ([]*models.Chapter, error)
	DeleteChapter(ctx context.Context, p models.Principal, chapterID int64) error
}

type chapterServiceImpl struct {
	chapterRepo repositories.IChapterRepository
	courseRepo  repositories.ICourseRepository
	authz       *auth.AuthorizationService
	logger      zerolog.Logger
}

// NewChapterService creates a new ChapterService
func NewChapterService(
	chapterRepo repositories.IChapterRepository,
	courseRepo repositories.ICourseRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) ChapterService {
	return &chapterServiceImpl{
		chapterRepo: chapterRepo,
		courseRepo:  courseRepo,
		authz:       authz,
		logger:      logger,
	}
}

// AddChapter requires an approved mentor who owns the course
func (s *chapterServiceImpl) AddChapter(ctx context.Context, p models.Principal, courseID int64, title, content string) (*models.Chapter, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, apperrors.NewBadRequestError("Title and content are required")
	}
	if err := auth.RequireRole(p, apperrors.ErrMentorsOnly, models.RoleMentor); err != nil {
		return nil, err
	}
	if _, err := s.authz.OwnedCourse(ctx, p.UserID, courseID, apperrors.ErrNotCourseOwner); err != nil {
		return nil, err
	}
	if err := s.authz.RequireApprovedMentor(ctx, p.UserID); err != nil {
		return nil, err
	}

	chapter := &models.Chapter{Title: title, Content: content, CourseID: courseID}
	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("chapterID", chapter.ID).Int64("courseID", courseID).Msg("Chapter added")
	return chapter, nil
}

// ListChapters is open to mentors and to students enrolled in the course
func (s *chapterServiceImpl) ListChapters(ctx context.Context, p models.Principal, courseID int64) ([]*models.Chapter, error) {
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Forbidden"), models.RoleStudent, models.RoleMentor); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	if p.Role == models.RoleStudent {
		if err := s.authz.RequireEnrollment(ctx, p.UserID, courseID, apperrors.ErrEnrollToView); err != nil {
			return nil, err
		}
	}
	return s.chapterRepo.ListByCourse(ctx, courseID)
}

// DeleteChapter requires an approved mentor who owns the chapter's course
func (s *chapterServiceImpl) DeleteChapter(ctx context.Context, p models.Principal, chapterID int64) error {
	if err := auth.RequireRole(p, apperrors.ErrMentorsOnly, models.RoleMentor); err != nil {
		return err
	}
	chapter, err := s.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return err
	}
	if _, err := s.authz.OwnedCourse(ctx, p.UserID, chapter.CourseID, apperrors.ErrChapterOwner); err != nil {
		return err
	}
	if err := s.authz.RequireApprovedMentor(ctx, p.UserID); err != nil {
		return err
	}
	if err := s.chapterRepo.Delete(ctx, chapterID); err != nil {
		return err
	}
	s.logger.Info().Int64("chapterID", chapterID).Int64("courseID", chapter.CourseID).Msg("Chapter deleted")
	return nil
}
