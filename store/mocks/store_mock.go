package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkmap/inkmap/ink"
	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStore) GetUser(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) EnsureInkAccount(ctx context.Context, userID string, initial int) error {
	args := m.Called(ctx, userID, initial)
	return args.Error(0)
}

func (m *MockStore) SettleInkBalance(ctx context.Context, userID string, policy ink.Policy) (int, error) {
	args := m.Called(ctx, userID, policy)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) CreateDrawing(ctx context.Context, drawing *models.Drawing, cost int, policy ink.Policy) (int, error) {
	args := m.Called(ctx, drawing, cost, policy)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) GetDrawing(ctx context.Context, id uint) (models.Drawing, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Drawing), args.Error(1)
}

func (m *MockStore) CountDrawings(ctx context.Context, q store.FeedQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ListDrawings(ctx context.Context, q store.FeedQuery) ([]store.FeedItem, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]store.FeedItem), args.Error(1)
}

func (m *MockStore) ToggleLike(ctx context.Context, drawingID uint, userID string) (int, bool, error) {
	args := m.Called(ctx, drawingID, userID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) CountLikes(ctx context.Context, drawingID uint) (int, error) {
	args := m.Called(ctx, drawingID)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) IsLikedBy(ctx context.Context, drawingID uint, userID string) (bool, error) {
	args := m.Called(ctx, drawingID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockStore) CountComments(ctx context.Context, drawingID uint) (int64, error) {
	args := m.Called(ctx, drawingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ListComments(ctx context.Context, drawingID uint, limit, offset int) ([]models.Comment, error) {
	args := m.Called(ctx, drawingID, limit, offset)
	return args.Get(0).([]models.Comment), args.Error(1)
}
