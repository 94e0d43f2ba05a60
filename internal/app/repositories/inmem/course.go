package inmemdb

import (
	"context"
	"sort"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

type courseRepository struct {
	db *DB
}

// NewCourseRepository creates an in-memory course repository
func NewCourseRepository(db *DB) repositories.ICourseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) Create(_ context.Context, course *models.Course) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	course.ID = repo.db.nextID()
	course.CreatedAt = repo.db.now()
	stored := *course
	repo.db.courses[course.ID] = &stored
	return nil
}

func (repo *courseRepository) GetByID(_ context.Context, id int64) (*models.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (repo *courseRepository) list(keep func(*models.Course) bool) []*models.Course {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := []*models.Course{}
	for _, c := range repo.db.courses {
		if keep(c) {
			cp := *c
			courses = append(courses, &cp)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (repo *courseRepository) List(_ context.Context) ([]*models.Course, error) {
	return repo.list(func(*models.Course) bool { return true }), nil
}

func (repo *courseRepository) ListByMentor(_ context.Context, mentorID int64) ([]*models.Course, error) {
	return repo.list(func(c *models.Course) bool { return c.MentorID == mentorID }), nil
}

// Delete holds the write lock for the whole cascade, so it is all or nothing
func (repo *courseRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}

	for chID, ch := range repo.db.chapters {
		if ch.CourseID == id {
			repo.db.deleteChapterLocked(chID)
		}
	}
	for eid, e := range repo.db.enrollments {
		if e.CourseID == id {
			delete(repo.db.enrollments, eid)
		}
	}
	for cid, c := range repo.db.certificates {
		if c.CourseID == id {
			delete(repo.db.certificates, cid)
		}
	}
	delete(repo.db.courses, id)
	return nil
}
