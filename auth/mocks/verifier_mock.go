package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkmap/inkmap/auth"
)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.Identity), args.Error(1)
}
