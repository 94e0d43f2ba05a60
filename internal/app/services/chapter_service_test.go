package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

func TestChapterService_AddChapter_Guards(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mentor(t, "owner")
	other := env.mentor(t, "other")
	pending := env.user(t, "pending", models.RoleMentor, false)

	course, _ := env.course(t, owner, "Go", 0)
	pendingCourse, err := env.svc.CourseService.CreateCourse(env.ctx, pending, "Rust", "desc")
	require.NoError(t, err)

	tests := []struct {
		name    string
		p       models.Principal
		course  int64
		title   string
		wantErr error
		wantMsg string
	}{
		{"not owner", other, course.ID, "Intro", apperrors.ErrPermissionDenied, "Not your course"},
		{"owner not approved", pending, pendingCourse.ID, "Intro", apperrors.ErrPermissionDenied, "Mentor not approved by admin"},
		{"missing course", owner, 9999, "Intro", apperrors.ErrResourceNotFound, "Course not found"},
		{"missing title", owner, course.ID, "", apperrors.ErrValidationFailed, "Title and content are required"},
		{"student", env.student(t, "s"), course.ID, "Intro", apperrors.ErrPermissionDenied, "Only mentors allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.ChapterService.AddChapter(env.ctx, tt.p, tt.course, tt.title, "content")
			require.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}

	assert.Equal(t, 0, env.db.Counts().Chapters)
}

func TestChapterService_ListChapters(t *testing.T) {
	env := newTestEnv(t)
	mentor := env.mentor(t, "mia")
	student := env.student(t, "sam")
	course, chapters := env.course(t, mentor, "Go", 3)

	_, err := env.svc.ChapterService.ListChapters(env.ctx, student, course.ID)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.EqualError(t, err, "Enroll in course to view chapters")

	_, err = env.svc.ChapterService.ListChapters(env.ctx, student, 9999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	env.enroll(t, student, course.ID)
	for _, p := range []models.Principal{student, mentor, env.mentor(t, "another")} {
		got, err := env.svc.ChapterService.ListChapters(env.ctx, p, course.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := range chapters {
			assert.Equal(t, chapters[i].ID, got[i].ID, "chapters are listed in creation order")
		}
	}
}

func TestChapterService_DeleteChapter(t *testing.T) {
	env := newTestEnv(t)
	mentor := env.mentor(t, "mia")
	other := env.mentor(t, "other")
	student := env.student(t, "sam")
	course, chapters := env.course(t, mentor, "Go", 2)
	env.enroll(t, student, course.ID)
	require.NoError(t, env.svc.ProgressService.CompleteChapter(env.ctx, student, chapters[0].ID))

	err := env.svc.ChapterService.DeleteChapter(env.ctx, other, chapters[0].ID)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.EqualError(t, err, "Not allowed to delete this chapter")

	assert.ErrorIs(t, env.svc.ChapterService.DeleteChapter(env.ctx, mentor, 9999), apperrors.ErrResourceNotFound)

	require.NoError(t, env.svc.ChapterService.DeleteChapter(env.ctx, mentor, chapters[0].ID))
	assert.Equal(t, 1, env.db.Counts().Chapters)
	assert.Equal(t, 0, env.db.Counts().Progress)

	progress, err := env.svc.ProgressService.CourseProgress(env.ctx, student, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Percent)
}
