package services

import (
	"github.com/yigit/learnify/internal/app/auth"
	"github.com/yigit/learnify/internal/app/repositories"
	pkgauth "github.com/yigit/learnify/internal/pkg/auth"
	"github.com/yigit/learnify/internal/pkg/logger"
)

// Services holds every application service
type Services struct {
	AuthService        AuthService
	UserService        UserService
	CourseService      CourseService
	ChapterService     ChapterService
	EnrollmentService  EnrollmentService
	ProgressService    ProgressService
	CertificateService CertificateService
}

// NewServices wires the services on top of the given repositories
func NewServices(repos *repositories.Repositories, jwtService *pkgauth.JWTService) *Services {
	authz := auth.NewAuthorizationService(repos.UserRepository, repos.CourseRepository, repos.EnrollmentRepository)

	certificates := NewCertificateService(
		repos.CertificateRepository,
		repos.ChapterRepository,
		repos.ProgressRepository,
		authz,
		logger.Component("certificate-service"),
	)
	progress := NewProgressService(
		repos.ProgressRepository,
		repos.ChapterRepository,
		authz,
		certificates,
		logger.Component("progress-service"),
	)

	return &Services{
		AuthService:        NewAuthService(repos.UserRepository, jwtService, logger.Component("auth-service")),
		UserService:        NewUserService(repos.UserRepository, logger.Component("user-service")),
		CourseService:      NewCourseService(repos.CourseRepository, authz, logger.Component("course-service")),
		ChapterService:     NewChapterService(repos.ChapterRepository, repos.CourseRepository, authz, logger.Component("chapter-service")),
		EnrollmentService:  NewEnrollmentService(repos.EnrollmentRepository, repos.CourseRepository, progress, logger.Component("enrollment-service")),
		ProgressService:    progress,
		CertificateService: certificates,
	}
}
