package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/inkmap/inkmap/models"
)

func TestLogin_CreatesUserAndInkAccount(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockStore.On("SaveUser", ctx, models.User{
		ID:          identity.UserID,
		DisplayName: identity.DisplayName,
	}).Return(nil)
	mockStore.On("EnsureInkAccount", ctx, identity.UserID, svc.Ink.Initial).Return(nil)

	err := svc.Login(ctx, identity)
	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestLogin_SaveUserFails(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockStore.On("SaveUser", ctx, mock.Anything).Return(errors.New("db down"))

	err := svc.Login(ctx, identity)
	assert.Error(t, err)
	mockStore.AssertNotCalled(t, "EnsureInkAccount")
}

func TestInkBalance_Settles(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("SettleInkBalance", ctx, "user1", svc.Ink).Return(350, nil)

	ink, err := svc.InkBalance(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, 350, ink)
}
