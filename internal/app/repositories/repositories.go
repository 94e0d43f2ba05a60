package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository implementations behind their interfaces
type Repositories struct {
	UserRepository        IUserRepository
	CourseRepository      ICourseRepository
	ChapterRepository     IChapterRepository
	EnrollmentRepository  IEnrollmentRepository
	ProgressRepository    IProgressRepository
	CertificateRepository ICertificateRepository
}

// NewRepositories initializes all PostgreSQL repositories on one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ChapterRepository:     NewChapterRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		ProgressRepository:    NewProgressRepository(db),
		CertificateRepository: NewCertificateRepository(db),
	}
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
