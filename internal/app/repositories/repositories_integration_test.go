//go:build integration

package repositories

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/learnify/internal/app/migrations"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

// Run with: LEARNIFY_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/app/repositories/
func newTestPool(t *testing.T) (*pgxpool.Pool, *Repositories) {
	t.Helper()
	dsn := os.Getenv("LEARNIFY_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LEARNIFY_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator := migrations.NewMigrator(pool, zerolog.Nop())
	require.NoError(t, migrator.MigrateFromDirectory(ctx, filepath.Join("..", "..", "..", "migrations")))

	_, err = pool.Exec(ctx, `TRUNCATE certificates, chapter_progress, enrollments, chapters, courses, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool, NewRepositories(pool)
}

type pgFixture struct {
	student *models.User
	course  *models.Course
	chapter *models.Chapter
}

func seedCourse(t *testing.T, repos *Repositories) pgFixture {
	t.Helper()
	ctx := context.Background()

	mentor := &models.User{Name: "mia", Email: "mia@learnify.test", Password: "x", Role: models.RoleMentor}
	require.NoError(t, repos.UserRepository.Create(ctx, mentor))
	student := &models.User{Name: "sam", Email: "sam@learnify.test", Password: "x", Role: models.RoleStudent}
	require.NoError(t, repos.UserRepository.Create(ctx, student))

	course := &models.Course{Title: "Go", Description: "Go basics", MentorID: mentor.ID}
	require.NoError(t, repos.CourseRepository.Create(ctx, course))
	chapter := &models.Chapter{Title: "Intro", Content: "hello", CourseID: course.ID}
	require.NoError(t, repos.ChapterRepository.Create(ctx, chapter))

	return pgFixture{student: student, course: course, chapter: chapter}
}

func TestPostgres_UserEmailUnique(t *testing.T) {
	_, repos := newTestPool(t)
	ctx := context.Background()

	require.NoError(t, repos.UserRepository.Create(ctx, &models.User{Name: "a", Email: "dup@learnify.test", Password: "x", Role: models.RoleStudent}))
	err := repos.UserRepository.Create(ctx, &models.User{Name: "b", Email: "dup@learnify.test", Password: "x", Role: models.RoleStudent})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	u, err := repos.UserRepository.GetByEmail(ctx, "dup@learnify.test")
	require.NoError(t, err)
	assert.False(t, u.Approved)
}

func TestPostgres_EnrollmentAndProgressConflicts(t *testing.T) {
	_, repos := newTestPool(t)
	ctx := context.Background()
	f := seedCourse(t, repos)

	require.NoError(t, repos.EnrollmentRepository.Create(ctx, &models.Enrollment{StudentID: f.student.ID, CourseID: f.course.ID}))
	err := repos.EnrollmentRepository.Create(ctx, &models.Enrollment{StudentID: f.student.ID, CourseID: f.course.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	require.NoError(t, repos.ProgressRepository.Create(ctx, &models.ChapterProgress{StudentID: f.student.ID, ChapterID: f.chapter.ID}))
	err = repos.ProgressRepository.Create(ctx, &models.ChapterProgress{StudentID: f.student.ID, ChapterID: f.chapter.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyCompleted)

	done, err := repos.ProgressRepository.CountCompletedInCourse(ctx, f.student.ID, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, done)
}

func TestPostgres_CertificateCreateIfAbsent(t *testing.T) {
	pool, repos := newTestPool(t)
	ctx := context.Background()
	f := seedCourse(t, repos)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cert := &models.Certificate{
				StudentID:     f.student.ID,
				CourseID:      f.course.ID,
				CertificateNo: "CERT-" + string(rune('A'+n)),
			}
			ok, err := repos.CertificateRepository.CreateIfAbsent(ctx, cert)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, created)

	var rows int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM certificates`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestPostgres_CourseDeleteCascade(t *testing.T) {
	pool, repos := newTestPool(t)
	ctx := context.Background()
	f := seedCourse(t, repos)

	require.NoError(t, repos.EnrollmentRepository.Create(ctx, &models.Enrollment{StudentID: f.student.ID, CourseID: f.course.ID}))
	require.NoError(t, repos.ProgressRepository.Create(ctx, &models.ChapterProgress{StudentID: f.student.ID, ChapterID: f.chapter.ID}))
	_, err := repos.CertificateRepository.CreateIfAbsent(ctx, &models.Certificate{StudentID: f.student.ID, CourseID: f.course.ID, CertificateNo: "CERT-1"})
	require.NoError(t, err)

	require.NoError(t, repos.CourseRepository.Delete(ctx, f.course.ID))
	assert.ErrorIs(t, repos.CourseRepository.Delete(ctx, f.course.ID), apperrors.ErrCourseNotFound)

	for _, table := range []string{"courses", "chapters", "enrollments", "chapter_progress", "certificates"} {
		var n int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
		assert.Zero(t, n, table)
	}
}
