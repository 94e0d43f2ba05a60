package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	inmemdb "github.com/yigit/learnify/internal/app/repositories/inmem"
	appServices "github.com/yigit/learnify/internal/app/services"
	pkgauth "github.com/yigit/learnify/internal/pkg/auth"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	repos := inmemdb.NewRepositories(inmemdb.NewDB())
	svc := appServices.NewServices(repos, pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "seed-secret",
		AccessTokenExp: time.Hour,
	}))
	admin := AdminAccount{Name: "Root", Email: "root@learnify.dev", Password: "changeme"}

	require.NoError(t, EnsureAdmin(ctx, repos.UserRepository, svc.AuthService, admin, zerolog.Nop()))
	require.NoError(t, EnsureAdmin(ctx, repos.UserRepository, svc.AuthService, admin, zerolog.Nop()))

	users, err := repos.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	login, err := svc.AuthService.Login(ctx, &dto.LoginRequest{Email: admin.Email, Password: admin.Password})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, login.Role)
}

func TestEnsureAdmin_Disabled(t *testing.T) {
	repos := inmemdb.NewRepositories(inmemdb.NewDB())

	require.NoError(t, EnsureAdmin(context.Background(), repos.UserRepository, nil, AdminAccount{}, zerolog.Nop()))

	users, err := repos.UserRepository.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
