package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/auth"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/certpdf"
)

// CertificateService issues and serves certificates of completion
type CertificateService interface {
	// IssueIfEligible creates the certificate when the student has completed every
	// chapter of the course. Ineligible students and existing certificates are
	// not errors; it reports whether a new certificate was created.
	IssueIfEligible(ctx context.Context, studentID, courseID int64) (bool, error)
	Generate(ctx context.Context, p models.Principal, courseID int64) (*models.Certificate, error)
	MyCertificates(ctx context.Context, p models.Principal) ([]*models.CertificateDetails, error)
	// RenderPDF returns the certificate document of the student for the course
	RenderPDF(ctx context.Context, p models.Principal, courseID int64) ([]byte, error)
}

type certificateServiceImpl struct {
	certRepo     repositories.ICertificateRepository
	chapterRepo  repositories.IChapterRepository
	progressRepo repositories.IProgressRepository
	authz        *auth.AuthorizationService
	newNumber    func() string
	logger       zerolog.Logger
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(
	certRepo repositories.ICertificateRepository,
	chapterRepo repositories.IChapterRepository,
	progressRepo repositories.IProgressRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) CertificateService {
	return &certificateServiceImpl{
		certRepo:     certRepo,
		chapterRepo:  chapterRepo,
		progressRepo: progressRepo,
		authz:        authz,
		newNumber:    uuid.NewString,
		logger:       logger,
	}
}

// eligibility is the single rule set for both the automatic and manual paths.
// The order of checks fixes which error a caller sees.
func (s *certificateServiceImpl) eligibility(ctx context.Context, studentID, courseID int64) error {
	if err := s.authz.RequireEnrollment(ctx, studentID, courseID, apperrors.ErrEnrollFirst); err != nil {
		return err
	}

	exists, err := s.certRepo.Exists(ctx, studentID, courseID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrAlreadyCertified
	}

	total, err := s.chapterRepo.CountByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if total == 0 {
		return apperrors.ErrCourseHasNoChapters
	}

	completed, err := s.progressRepo.CountCompletedInCourse(ctx, studentID, courseID)
	if err != nil {
		return err
	}
	if completed != total {
		return apperrors.ErrCourseIncomplete
	}
	return nil
}

// isIneligible reports whether err is an eligibility verdict rather than a failure
func isIneligible(err error) bool {
	return apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrConflict, apperrors.ErrValidationFailed)
}

// issue runs the conditional insert; created is false when a certificate already existed
func (s *certificateServiceImpl) issue(ctx context.Context, studentID, courseID int64) (*models.Certificate, bool, error) {
	cert := &models.Certificate{
		StudentID:     studentID,
		CourseID:      courseID,
		CertificateNo: s.newNumber(),
	}
	created, err := s.certRepo.CreateIfAbsent(ctx, cert)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info().
			Int64("studentID", studentID).
			Int64("courseID", courseID).
			Str("certificateNo", cert.CertificateNo).
			Msg("Certificate issued")
	}
	return cert, created, nil
}

func (s *certificateServiceImpl) IssueIfEligible(ctx context.Context, studentID, courseID int64) (bool, error) {
	if err := s.eligibility(ctx, studentID, courseID); err != nil {
		if isIneligible(err) {
			return false, nil
		}
		return false, err
	}
	_, created, err := s.issue(ctx, studentID, courseID)
	return created, err
}

func (s *certificateServiceImpl) Generate(ctx context.Context, p models.Principal, courseID int64) (*models.Certificate, error) {
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Only students can generate certificates"), models.RoleStudent); err != nil {
		return nil, err
	}
	if err := s.eligibility(ctx, p.UserID, courseID); err != nil {
		return nil, err
	}

	cert, created, err := s.issue(ctx, p.UserID, courseID)
	if err != nil {
		return nil, err
	}
	if !created {
		// lost the race against a concurrent completion
		return nil, apperrors.ErrAlreadyCertified
	}
	return cert, nil
}

func (s *certificateServiceImpl) MyCertificates(ctx context.Context, p models.Principal) ([]*models.CertificateDetails, error) {
	if err := auth.RequireRole(p, apperrors.ErrStudentsOnly, models.RoleStudent); err != nil {
		return nil, err
	}
	return s.certRepo.ListByStudent(ctx, p.UserID)
}

func (s *certificateServiceImpl) RenderPDF(ctx context.Context, p models.Principal, courseID int64) ([]byte, error) {
	if err := auth.RequireRole(p, apperrors.NewForbiddenError("Forbidden"), models.RoleStudent); err != nil {
		return nil, err
	}

	details, err := s.certRepo.GetDetails(ctx, p.UserID, courseID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = certpdf.Render(&buf, certpdf.Data{
		StudentName:   details.StudentName,
		CourseTitle:   details.CourseTitle,
		IssuedAt:      details.IssuedAt,
		CertificateNo: details.CertificateNo,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("certificateID", details.ID).Msg("Failed to render certificate PDF")
		return nil, fmt.Errorf("error rendering certificate: %w", err)
	}
	return buf.Bytes(), nil
}
