package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/service"
	"github.com/shravani101006/serene-write/store"
)

func newTestService(t *testing.T) (*service.Service, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return service.New(st), st
}

func registerUser(t *testing.T, svc *service.Service, name, email string) *models.User {
	t.Helper()
	u, err := svc.Register(context.Background(), service.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "pw123456",
	})
	require.NoError(t, err)
	return u
}

func createPost(t *testing.T, svc *service.Service, actor *models.User, in service.CreatePostInput) *models.Post {
	t.Helper()
	p, err := svc.CreatePost(context.Background(), actor, in)
	require.NoError(t, err)
	return p
}
