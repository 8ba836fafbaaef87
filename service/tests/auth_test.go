package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/service"
)

func TestAuthenticate_EmptyToken(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthenticate_CacheHit(t *testing.T) {
	svc, _, mockCache, mockVerifier := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockCache.On("GetIdentity", ctx, "tok").Return(identity, true, nil)

	got, err := svc.Authenticate(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, identity, got)
	mockVerifier.AssertNotCalled(t, "Verify")
}

func TestAuthenticate_CacheMissVerifies(t *testing.T) {
	svc, _, mockCache, mockVerifier := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockCache.On("GetIdentity", ctx, "tok").Return(auth.Identity{}, false, nil)
	mockVerifier.On("Verify", ctx, "tok").Return(identity, nil)
	mockCache.On("SetIdentity", ctx, "tok", identity, mock.AnythingOfType("time.Duration")).Return(nil)

	got, err := svc.Authenticate(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, identity, got)
	mockCache.AssertExpectations(t)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	svc, _, mockCache, mockVerifier := setupService(t)
	ctx := context.Background()

	mockCache.On("GetIdentity", ctx, "bad").Return(auth.Identity{}, false, nil)
	mockVerifier.On("Verify", ctx, "bad").Return(auth.Identity{}, auth.ErrInvalidToken)

	_, err := svc.Authenticate(ctx, "bad")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthenticate_CacheFailureFallsThrough(t *testing.T) {
	svc, _, mockCache, mockVerifier := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockCache.On("GetIdentity", ctx, "tok").Return(auth.Identity{}, false, errors.New("redis down"))
	mockVerifier.On("Verify", ctx, "tok").Return(identity, nil)
	mockCache.On("SetIdentity", ctx, "tok", identity, mock.AnythingOfType("time.Duration")).
		Return(errors.New("redis down"))

	got, err := svc.Authenticate(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestDevVerifier_Roundtrip(t *testing.T) {
	verifier := auth.NewDevVerifier([]byte("secret"))

	token, err := verifier.MintToken("user1", "Test User", time.Hour)
	assert.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "user1", identity.UserID)
	assert.Equal(t, "Test User", identity.DisplayName)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestDevVerifier_WrongSecret(t *testing.T) {
	minter := auth.NewDevVerifier([]byte("secret"))
	verifier := auth.NewDevVerifier([]byte("other"))

	token, err := minter.MintToken("user1", "Test User", time.Hour)
	assert.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}
