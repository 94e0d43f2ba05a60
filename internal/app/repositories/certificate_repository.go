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

// ICertificateRepository defines the interface for certificate database operations
type ICertificateRepository interface {
	// CreateIfAbsent inserts the certificate unless one already exists for the
	// (student, course) pair. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, cert *models.Certificate) (bool, error)
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	GetDetails(ctx context.Context, studentID, courseID int64) (*models.CertificateDetails, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.CertificateDetails, error)
}

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateIfAbsent is a single conditional insert keyed on UNIQUE(student_id, course_id)
func (r *CertificateRepository) CreateIfAbsent(ctx context.Context, cert *models.Certificate) (bool, error) {
	sql, args, err := r.sb.Insert("certificates").
		Columns("student_id", "course_id", "certificate_no").
		Values(cert.StudentID, cert.CourseID, cert.CertificateNo).
		Suffix("ON CONFLICT (student_id, course_id) DO NOTHING RETURNING id, issued_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create certificate SQL")
		return false, fmt.Errorf("failed to build create certificate query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&cert.ID, &cert.IssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).
			Int64("studentID", cert.StudentID).
			Int64("courseID", cert.CourseID).
			Msg("Error executing create certificate query")
		return false, fmt.Errorf("error creating certificate: %w", err)
	}
	return true, nil
}

// Exists reports whether the student holds a certificate for the course
func (r *CertificateRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM certificates WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error checking certificate")
		return false, fmt.Errorf("error checking certificate: %w", err)
	}
	return exists, nil
}

func (r *CertificateRepository) selectDetails() squirrel.SelectBuilder {
	return r.sb.Select(
		"cert.id", "cert.student_id", "cert.course_id", "cert.certificate_no", "cert.issued_at",
		"u.name", "c.title",
	).
		From("certificates cert").
		Join("users u ON u.id = cert.student_id").
		Join("courses c ON c.id = cert.course_id")
}

func scanCertificateDetails(row pgx.Row) (*models.CertificateDetails, error) {
	d := &models.CertificateDetails{}
	err := row.Scan(&d.ID, &d.StudentID, &d.CourseID, &d.CertificateNo, &d.IssuedAt, &d.StudentName, &d.CourseTitle)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetDetails returns the certificate of a student for a course with names resolved
func (r *CertificateRepository) GetDetails(ctx context.Context, studentID, courseID int64) (*models.CertificateDetails, error) {
	sql, args, err := r.selectDetails().
		Where(squirrel.Eq{"cert.student_id": studentID, "cert.course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get certificate SQL")
		return nil, fmt.Errorf("failed to build get certificate query: %w", err)
	}

	d, err := scanCertificateDetails(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateMissing
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error scanning certificate row")
		return nil, fmt.Errorf("error getting certificate: %w", err)
	}
	return d, nil
}

// ListByStudent returns a student's certificates, newest first
func (r *CertificateRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.CertificateDetails, error) {
	sql, args, err := r.selectDetails().
		Where(squirrel.Eq{"cert.student_id": studentID}).
		OrderBy("cert.issued_at DESC", "cert.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list certificates SQL")
		return nil, fmt.Errorf("failed to build list certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list certificates query")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer rows.Close()

	certs := []*models.CertificateDetails{}
	for rows.Next() {
		d, err := scanCertificateDetails(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning certificate row")
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, d)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating certificate rows")
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}
	return certs, nil
}
