package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/learnify/internal/app/models"
	inmemdb "github.com/yigit/learnify/internal/app/repositories/inmem"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

func TestCourseService_CreateCourse(t *testing.T) {
	env := newTestEnv(t)
	mentor := env.mentor(t, "mia")
	student := env.student(t, "sam")

	_, err := env.svc.CourseService.CreateCourse(env.ctx, mentor, "", "desc")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = env.svc.CourseService.CreateCourse(env.ctx, student, "Go", "desc")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	course, err := env.svc.CourseService.CreateCourse(env.ctx, mentor, "Go", "desc")
	require.NoError(t, err)
	assert.Equal(t, mentor.UserID, course.MentorID)

	mine, err := env.svc.CourseService.MyCourses(env.ctx, mentor)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, course.ID, mine[0].ID)
}

func TestCourseService_DeleteCourse_Cascade(t *testing.T) {
	env := newTestEnv(t)
	mentor := env.mentor(t, "mia")
	s1 := env.student(t, "s1")
	s2 := env.student(t, "s2")

	doomed, doomedChapters := env.course(t, mentor, "Doomed", 2)
	kept, keptChapters := env.course(t, mentor, "Kept", 2)

	for _, s := range []models.Principal{s1, s2} {
		env.enroll(t, s, doomed.ID)
		env.enroll(t, s, kept.ID)
	}
	// s1 finishes the doomed course and so holds a certificate for it
	for _, ch := range doomedChapters {
		require.NoError(t, env.svc.ProgressService.CompleteChapter(env.ctx, s1, ch.ID))
	}
	require.NoError(t, env.svc.ProgressService.CompleteChapter(env.ctx, s2, keptChapters[0].ID))

	before := env.db.Counts()
	require.NoError(t, env.svc.CourseService.DeleteCourse(env.ctx, mentor, doomed.ID))
	after := env.db.Counts()

	assert.Equal(t, inmemdb.Counts{
		Users:        before.Users,
		Courses:      1,
		Chapters:     2,
		Enrollments:  2,
		Progress:     1,
		Certificates: 0,
	}, after)

	_, err := env.svc.CourseService.GetCourse(env.ctx, doomed.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	progress, err := env.svc.ProgressService.CourseProgress(env.ctx, s2, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, progress.Percent)
	assert.Equal(t, []int64{keptChapters[0].ID}, progress.CompletedChapterIDs)
}

func TestCourseService_DeleteCourse_Guards(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mentor(t, "owner")
	other := env.mentor(t, "other")
	course, _ := env.course(t, owner, "Go", 1)

	err := env.svc.CourseService.DeleteCourse(env.ctx, other, course.ID)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.EqualError(t, err, "You are not allowed to delete this course")

	assert.ErrorIs(t, env.svc.CourseService.DeleteCourse(env.ctx, owner, 9999), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, env.svc.CourseService.DeleteCourse(env.ctx, env.student(t, "s"), course.ID), apperrors.ErrPermissionDenied)

	_, err = env.svc.CourseService.GetCourse(env.ctx, course.ID)
	assert.NoError(t, err)
}
