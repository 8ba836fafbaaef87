package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/inkmap/inkmap/auth"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetIdentity(ctx context.Context, token string) (auth.Identity, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.Identity), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetIdentity(ctx context.Context, token string, identity auth.Identity, ttl time.Duration) error {
	args := m.Called(ctx, token, identity, ttl)
	return args.Error(0)
}
