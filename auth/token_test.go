package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
	"github.com/shravani101006/serene-write/store"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", store.NewMemory())
	userID := primitive.NewObjectID()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", store.NewMemory())

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", store.NewMemory())
	verifier := NewTokenService("secret-two", store.NewMemory())

	token, err := issuer.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", store.NewMemory())

	token, err := svc.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	// Jump past the 7-day lifetime.
	svc.now = func() time.Time { return time.Now().Add(tokenTTL + time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveLoadsUser(t *testing.T) {
	st := store.NewMemory()
	svc := NewTokenService("test-secret", st)

	u := &models.User{ID: primitive.NewObjectID(), Name: "Ann", Email: "a@x.com"}
	require.NoError(t, st.CreateUser(context.Background(), u))

	token, err := svc.Issue(u.ID)
	require.NoError(t, err)

	got, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
}

func TestResolveUnknownUser(t *testing.T) {
	svc := NewTokenService("test-secret", store.NewMemory())

	// Valid token, but the user behind it does not exist.
	token, err := svc.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
