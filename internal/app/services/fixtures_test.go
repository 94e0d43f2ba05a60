package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	inmemdb "github.com/yigit/learnify/internal/app/repositories/inmem"
	pkgauth "github.com/yigit/learnify/internal/pkg/auth"
)

type testEnv struct {
	ctx   context.Context
	db    *inmemdb.DB
	repos *repositories.Repositories
	svc   *Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := inmemdb.NewDB()
	repos := inmemdb.NewRepositories(db)
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "learnify-test",
	})
	return &testEnv{
		ctx:   context.Background(),
		db:    db,
		repos: repos,
		svc:   NewServices(repos, jwtService),
	}
}

func (e *testEnv) user(t *testing.T, name string, role models.Role, approved bool) models.Principal {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@learnify.test", Password: "x", Role: role, Approved: approved}
	require.NoError(t, e.repos.UserRepository.Create(e.ctx, u))
	return models.Principal{UserID: u.ID, Role: role}
}

func (e *testEnv) student(t *testing.T, name string) models.Principal {
	return e.user(t, name, models.RoleStudent, false)
}

func (e *testEnv) mentor(t *testing.T, name string) models.Principal {
	return e.user(t, name, models.RoleMentor, true)
}

func (e *testEnv) course(t *testing.T, mentor models.Principal, title string, chapters int) (*models.Course, []*models.Chapter) {
	t.Helper()
	c, err := e.svc.CourseService.CreateCourse(e.ctx, mentor, title, title+" description")
	require.NoError(t, err)

	out := make([]*models.Chapter, 0, chapters)
	for i := 0; i < chapters; i++ {
		ch, err := e.svc.ChapterService.AddChapter(e.ctx, mentor, c.ID, title+" chapter", "content")
		require.NoError(t, err)
		out = append(out, ch)
	}
	return c, out
}

func (e *testEnv) enroll(t *testing.T, student models.Principal, courseID int64) {
	t.Helper()
	require.NoError(t, e.svc.EnrollmentService.Enroll(e.ctx, student, courseID))
}

func newProgress(studentID, chapterID int64) *models.ChapterProgress {
	return &models.ChapterProgress{StudentID: studentID, ChapterID: chapterID}
}
