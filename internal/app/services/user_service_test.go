package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

func TestUserService_ApproveMentor(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", models.RoleAdmin, false)
	mentor := env.user(t, "mia", models.RoleMentor, false)
	student := env.student(t, "sam")

	updated, err := env.svc.UserService.ApproveMentor(env.ctx, admin, mentor.UserID)
	require.NoError(t, err)
	assert.True(t, updated.Approved)

	stored, err := env.svc.UserService.GetProfile(env.ctx, mentor.UserID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)

	_, err = env.svc.UserService.ApproveMentor(env.ctx, admin, student.UserID)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)

	_, err = env.svc.UserService.ApproveMentor(env.ctx, admin, 4242)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", models.RoleAdmin, false)
	a := env.student(t, "a")
	b := env.mentor(t, "b")

	users, err := env.svc.UserService.ListUsers(env.ctx, admin)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, admin.UserID, users[0].ID)
	assert.Equal(t, a.UserID, users[1].ID)
	assert.Equal(t, b.UserID, users[2].ID)
}

func TestUserService_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	mentor := env.user(t, "mia", models.RoleMentor, false)
	student := env.student(t, "sam")

	tests := []struct {
		name   string
		caller models.Principal
	}{
		{name: "no principal", caller: models.Principal{}},
		{name: "student", caller: student},
		{name: "mentor approving self", caller: mentor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.UserService.ApproveMentor(env.ctx, tt.caller, mentor.UserID)
			assert.ErrorIs(t, err, apperrors.ErrAdminsOnly)

			_, err = env.svc.UserService.ListUsers(env.ctx, tt.caller)
			assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		})
	}

	stored, err := env.svc.UserService.GetProfile(env.ctx, mentor.UserID)
	require.NoError(t, err)
	assert.False(t, stored.Approved)
}
