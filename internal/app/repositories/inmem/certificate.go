package inmemdb

import (
	"context"
	"sort"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

type certificateRepository struct {
	db *DB
}

// NewCertificateRepository creates an in-memory certificate repository
func NewCertificateRepository(db *DB) repositories.ICertificateRepository {
	return &certificateRepository{db: db}
}

func (db *DB) certificateLocked(studentID, courseID int64) *models.Certificate {
	for _, c := range db.certificates {
		if c.StudentID == studentID && c.CourseID == courseID {
			return c
		}
	}
	return nil
}

func (repo *certificateRepository) CreateIfAbsent(_ context.Context, cert *models.Certificate) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.db.certificateLocked(cert.StudentID, cert.CourseID) != nil {
		return false, nil
	}
	for _, c := range repo.db.certificates {
		if c.CertificateNo == cert.CertificateNo {
			return false, apperrors.NewConflictError("certificate number already used")
		}
	}

	cert.ID = repo.db.nextID()
	cert.IssuedAt = repo.db.now()
	stored := *cert
	repo.db.certificates[cert.ID] = &stored
	return true, nil
}

func (repo *certificateRepository) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.certificateLocked(studentID, courseID) != nil, nil
}

func (db *DB) detailsLocked(c *models.Certificate) *models.CertificateDetails {
	d := &models.CertificateDetails{Certificate: *c}
	if u, ok := db.users[c.StudentID]; ok {
		d.StudentName = u.Name
	}
	if course, ok := db.courses[c.CourseID]; ok {
		d.CourseTitle = course.Title
	}
	return d
}

func (repo *certificateRepository) GetDetails(_ context.Context, studentID, courseID int64) (*models.CertificateDetails, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	c := repo.db.certificateLocked(studentID, courseID)
	if c == nil {
		return nil, apperrors.ErrCertificateMissing
	}
	return repo.db.detailsLocked(c), nil
}

func (repo *certificateRepository) ListByStudent(_ context.Context, studentID int64) ([]*models.CertificateDetails, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	out := []*models.CertificateDetails{}
	for _, c := range repo.db.certificates {
		if c.StudentID == studentID {
			out = append(out, repo.db.detailsLocked(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssuedAt.Equal(out[j].IssuedAt) {
			return out[i].IssuedAt.After(out[j].IssuedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
