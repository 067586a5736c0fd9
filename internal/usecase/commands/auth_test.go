//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campusbook/internal/infra"
	"campusbook/internal/pkg/clock"
	"campusbook/internal/pkg/jwt"
	"campusbook/internal/pkg/password"
	"campusbook/internal/usecase/commands"
	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserReadStore serves login lookups from the same map the write side
// populates.
type memUserReadStore struct {
	store *memStore
}

func (s *memUserReadStore) FindByEmail(_ context.Context, email string) (*queries.UserAccountView, error) {
	u, ok := s.store.users[email]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return &queries.UserAccountView{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
	}, nil
}

func (s *memUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserAccountView, error) {
	for _, u := range s.store.users {
		if u.ID() == id {
			return s.FindByEmail(context.Background(), u.Email().String())
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
}

func newAuthFixture() (*memStore, commands.AuthCommands, *jwt.Service) {
	store := newMemStore()
	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	cmds := commands.NewAuthCommands(&memUoW{store: store}, &memUserReadStore{store: store}, jwtService)
	return store, cmds, jwtService
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a valid token", func(t *testing.T) {
		_, cmds, jwtService := newAuthFixture()

		result, err := cmds.Register(ctx, commands.RegisterParams{
			Name: "Dana Kim", Email: "dana@campus.edu", Password: "secret1",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.UserID)
		assert.Equal(t, "student", result.Role.String())

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, claims.UserID)
	})

	t.Run("role defaults to student and can be overridden", func(t *testing.T) {
		_, cmds, _ := newAuthFixture()

		result, err := cmds.Register(ctx, commands.RegisterParams{
			Name: "Prof. Okafor", Email: "okafor@campus.edu", Password: "secret1", Role: "faculty",
		})
		require.NoError(t, err)
		assert.Equal(t, "faculty", result.Role.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, cmds, _ := newAuthFixture()

		_, err := cmds.Register(ctx, commands.RegisterParams{
			Name: "Dana", Email: "dana@campus.edu", Password: "secret1",
		})
		require.NoError(t, err)

		_, err = cmds.Register(ctx, commands.RegisterParams{
			Name: "Other Dana", Email: "dana@campus.edu", Password: "secret2",
		})
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	cases := []struct {
		name   string
		params commands.RegisterParams
	}{
		{name: "bad email", params: commands.RegisterParams{Name: "Dana", Email: "nope", Password: "secret1"}},
		{name: "short password", params: commands.RegisterParams{Name: "Dana", Email: "dana@campus.edu", Password: "short"}},
		{name: "bad role", params: commands.RegisterParams{Name: "Dana", Email: "dana@campus.edu", Password: "secret1", Role: "janitor"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, cmds, _ := newAuthFixture()
			_, err := cmds.Register(ctx, c.params)
			require.ErrorIs(t, err, commands.ErrDomainValidation)
		})
	}
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, cmds commands.AuthCommands) {
		t.Helper()
		_, err := cmds.Register(ctx, commands.RegisterParams{
			Name: "Dana Kim", Email: "dana@campus.edu", Password: "secret1",
		})
		require.NoError(t, err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		store, cmds, _ := newAuthFixture()
		seed(t, cmds)

		result, err := cmds.Login(ctx, "dana@campus.edu", "secret1")
		require.NoError(t, err)
		assert.Equal(t, store.users["dana@campus.edu"].ID(), result.UserID)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, cmds, _ := newAuthFixture()
		seed(t, cmds)

		_, err := cmds.Login(ctx, "dana@campus.edu", "wrong-password")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, cmds, _ := newAuthFixture()

		_, err := cmds.Login(ctx, "nobody@campus.edu", "secret1")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := password.HashPassword("secret1")
	require.NoError(t, err)

	require.NoError(t, password.ComparePassword(hash, "secret1"))
	require.Error(t, password.ComparePassword(hash, "other"))
}
