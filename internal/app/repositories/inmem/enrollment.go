package inmemdb

import (
	"context"
	"sort"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

type enrollmentRepository struct {
	db *DB
}

// NewEnrollmentRepository creates an in-memory enrollment repository
func NewEnrollmentRepository(db *DB) repositories.IEnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) Create(_ context.Context, enrollment *models.Enrollment) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.db.enrolledLocked(enrollment.StudentID, enrollment.CourseID) {
		return apperrors.ErrAlreadyEnrolled
	}

	enrollment.ID = repo.db.nextID()
	enrollment.CreatedAt = repo.db.now()
	stored := *enrollment
	repo.db.enrollments[enrollment.ID] = &stored
	return nil
}

func (repo *enrollmentRepository) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.enrolledLocked(studentID, courseID), nil
}

func (repo *enrollmentRepository) ListCoursesByStudent(_ context.Context, studentID int64) ([]*models.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	mine := []*models.Enrollment{}
	for _, e := range repo.db.enrollments {
		if e.StudentID == studentID {
			mine = append(mine, e)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].ID < mine[j].ID })

	courses := make([]*models.Course, 0, len(mine))
	for _, e := range mine {
		if c, ok := repo.db.courses[e.CourseID]; ok {
			cp := *c
			courses = append(courses, &cp)
		}
	}
	return courses, nil
}

func (db *DB) enrolledLocked(studentID, courseID int64) bool {
	for _, e := range db.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true
		}
	}
	return false
}
