package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/auth"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/helpers"
)

// ProgressService records chapter completions and reports course progress
type ProgressService interface {
	// CompleteChapter marks the chapter done and issues the course certificate
	// once every chapter of the course is done.
	CompleteChapter(ctx context.Context, p models.Principal, chapterID int64) error
	CourseProgress(ctx context.Context, p models.Principal, courseID int64) (*models.CourseProgress, error)
}

type progressServiceImpl struct {
	progressRepo repositories.IProgressRepository
	chapterRepo  repositories.IChapterRepository
	authz        *auth.AuthorizationService
	certificates CertificateService
	logger       zerolog.Logger
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	progressRepo repositories.IProgressRepository,
	chapterRepo repositories.IChapterRepository,
	authz *auth.AuthorizationService,
	certificates CertificateService,
	logger zerolog.Logger,
) ProgressService {
	return &progressServiceImpl{
		progressRepo: progressRepo,
		chapterRepo:  chapterRepo,
		authz:        authz,
		certificates: certificates,
		logger:       logger,
	}
}

func (s *progressServiceImpl) CompleteChapter(ctx context.Context, p models.Principal, chapterID int64) error {
	if err := auth.RequireRole(p, apperrors.ErrStudentsOnly, models.RoleStudent); err != nil {
		return err
	}

	chapter, err := s.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return err
	}
	if err := s.authz.RequireEnrollment(ctx, p.UserID, chapter.CourseID, apperrors.ErrNotEnrolled); err != nil {
		return err
	}

	done, err := s.progressRepo.Exists(ctx, p.UserID, chapterID)
	if err != nil {
		return err
	}
	if done {
		return apperrors.ErrAlreadyCompleted
	}

	// Create maps a concurrent duplicate to ErrAlreadyCompleted as well
	if err := s.progressRepo.Create(ctx, &models.ChapterProgress{StudentID: p.UserID, ChapterID: chapterID}); err != nil {
		return err
	}

	issued, err := s.certificates.IssueIfEligible(ctx, p.UserID, chapter.CourseID)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("studentID", p.UserID).
			Int64("courseID", chapter.CourseID).
			Msg("Chapter recorded but certificate issuance failed")
		return err
	}

	s.logger.Info().
		Int64("studentID", p.UserID).
		Int64("chapterID", chapterID).
		Bool("certificateIssued", issued).
		Msg("Chapter completed")
	return nil
}

// CourseProgress does not check that the course exists or that the student
// is enrolled; both cases yield zero progress.
func (s *progressServiceImpl) CourseProgress(ctx context.Context, p models.Principal, courseID int64) (*models.CourseProgress, error) {
	if err := auth.RequireRole(p, apperrors.ErrStudentsOnly, models.RoleStudent); err != nil {
		return nil, err
	}

	total, err := s.chapterRepo.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &models.CourseProgress{Percent: 0, CompletedChapterIDs: []int64{}}, nil
	}

	ids, err := s.progressRepo.ListCompletedChapterIDs(ctx, p.UserID, courseID)
	if err != nil {
		return nil, err
	}

	return &models.CourseProgress{
		Percent:             helpers.ProgressPercent(len(ids), total),
		CompletedChapterIDs: ids,
		TotalChapters:       total,
	}, nil
}
