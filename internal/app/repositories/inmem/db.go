// Package inmemdb implements the repository interfaces over in-process maps.
// It backs the service and HTTP tests and keeps the same uniqueness and
// cascade rules as the PostgreSQL schema.
package inmemdb

import (
	"sync"
	"time"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
)

// DB is a mutex-guarded set of tables
type DB struct {
	mutex sync.RWMutex

	seq   int64
	clock time.Time

	users        map[int64]*models.User
	courses      map[int64]*models.Course
	chapters     map[int64]*models.Chapter
	enrollments  map[int64]*models.Enrollment
	progress     map[int64]*models.ChapterProgress
	certificates map[int64]*models.Certificate
}

// NewDB creates an empty database
func NewDB() *DB {
	return &DB{
		clock:        time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
		users:        map[int64]*models.User{},
		courses:      map[int64]*models.Course{},
		chapters:     map[int64]*models.Chapter{},
		enrollments:  map[int64]*models.Enrollment{},
		progress:     map[int64]*models.ChapterProgress{},
		certificates: map[int64]*models.Certificate{},
	}
}

// nextID and now must be called with the write lock held.
// IDs are global across tables and timestamps strictly increase, so
// "ORDER BY created_at, id" is reproducible.
func (db *DB) nextID() int64 {
	db.seq++
	return db.seq
}

func (db *DB) now() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

// NewRepositories returns every repository backed by db
func NewRepositories(db *DB) *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:        NewUserRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ChapterRepository:     NewChapterRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		ProgressRepository:    NewProgressRepository(db),
		CertificateRepository: NewCertificateRepository(db),
	}
}

// Counts reports the row count of every table
type Counts struct {
	Users, Courses, Chapters, Enrollments, Progress, Certificates int
}

// Counts is a test helper for asserting cascades
func (db *DB) Counts() Counts {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return Counts{
		Users:        len(db.users),
		Courses:      len(db.courses),
		Chapters:     len(db.chapters),
		Enrollments:  len(db.enrollments),
		Progress:     len(db.progress),
		Certificates: len(db.certificates),
	}
}
