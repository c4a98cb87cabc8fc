package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/internal/store"
	"github.com/firelovers/storefront/pkg/auth"
)

func TestUserService(t *testing.T) {
	t.Run("create hashes the password", func(t *testing.T) {
		users := newMemUsers()
		svc := services.NewUserService(users)

		user, err := svc.Create(models.CreateUserInput{
			Username: "alice", Email: "Alice@Example.com", Password: "secret123",
		})
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", user.Email)
		require.NotEqual(t, "secret123", user.Password)
		require.True(t, auth.CheckPassword(user.Password, "secret123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newMemUsers()
		svc := services.NewUserService(users)

		_, err := svc.Create(models.CreateUserInput{
			Username: "alice", Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)

		_, err = svc.Create(models.CreateUserInput{
			Username: "alice2", Email: "alice@example.com", Password: "secret123",
		})
		require.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("patch updates only provided fields", func(t *testing.T) {
		users := newMemUsers()
		svc := services.NewUserService(users)

		user, err := svc.Create(models.CreateUserInput{
			Username: "alice", Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)

		name := "alice-renamed"
		patched, err := svc.Patch(user.ID, models.PatchUserInput{Username: &name})
		require.NoError(t, err)
		require.Equal(t, "alice-renamed", patched.Username)
		require.Equal(t, "alice@example.com", patched.Email)
		require.True(t, auth.CheckPassword(patched.Password, "secret123"))
	})

	t.Run("patch with no fields is rejected", func(t *testing.T) {
		users := newMemUsers()
		svc := services.NewUserService(users)

		user, err := svc.Create(models.CreateUserInput{
			Username: "alice", Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)

		_, err = svc.Patch(user.ID, models.PatchUserInput{})
		require.ErrorIs(t, err, services.ErrEmptyPatch)

		unchanged, err := svc.Find(user.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", unchanged.Username)
	})

	t.Run("login", func(t *testing.T) {
		users := newMemUsers()
		svc := services.NewUserService(users)

		created, err := svc.Create(models.CreateUserInput{
			Username: "alice", Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)

		token, user, err := svc.Login(models.LoginInput{
			Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, created.ID, user.ID)

		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)
		require.Equal(t, created.ID, claims.UserID)

		_, _, err = svc.Login(models.LoginInput{
			Email: "alice@example.com", Password: "wrong",
		})
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, _, err = svc.Login(models.LoginInput{
			Email: "nobody@example.com", Password: "secret123",
		})
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("delete", func(t *testing.T) {
		users := newMemUsers()
		svc := services.NewUserService(users)

		user, err := svc.Create(models.CreateUserInput{
			Username: "alice", Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(user.ID))
		require.ErrorIs(t, svc.Delete(user.ID), store.ErrNotFound)
		_, err = svc.Find(user.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
