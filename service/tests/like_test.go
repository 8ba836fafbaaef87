package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

func TestToggleLike_Like(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockStore.On("GetDrawing", ctx, uint(5)).
		Return(models.Drawing{ID: 5, OwnerID: "other", IsPublic: true}, nil)
	mockStore.On("ToggleLike", ctx, uint(5), identity.UserID).Return(4, true, nil)

	result, err := svc.ToggleLike(ctx, identity, 5)
	assert.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, 4, result.LikeCount)
}

func TestToggleLike_Unlike(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()
	identity := testIdentity()

	mockStore.On("GetDrawing", ctx, uint(5)).
		Return(models.Drawing{ID: 5, OwnerID: "other", IsPublic: true}, nil)
	mockStore.On("ToggleLike", ctx, uint(5), identity.UserID).Return(3, false, nil)

	result, err := svc.ToggleLike(ctx, identity, 5)
	assert.NoError(t, err)
	assert.False(t, result.IsLiked)
	assert.Equal(t, 3, result.LikeCount)
}

func TestToggleLike_PrivateDrawingHidden(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("GetDrawing", ctx, uint(5)).
		Return(models.Drawing{ID: 5, OwnerID: "other", IsPublic: false}, nil)

	_, err := svc.ToggleLike(ctx, testIdentity(), 5)
	assert.ErrorIs(t, err, store.ErrNotFound)
	mockStore.AssertNotCalled(t, "ToggleLike")
}

func TestToggleLike_NotFound(t *testing.T) {
	svc, mockStore, _, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("GetDrawing", ctx, uint(9)).Return(models.Drawing{}, store.ErrNotFound)

	_, err := svc.ToggleLike(ctx, testIdentity(), 9)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
