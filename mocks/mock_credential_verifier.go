package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bolextract/internal/port"
)

// MockCredentialVerifier is a mock implementation of port.CredentialVerifier.
type MockCredentialVerifier struct {
	mock.Mock
}

func (m *MockCredentialVerifier) Verify(ctx context.Context) (*port.CallerIdentity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.CallerIdentity), args.Error(1)
}
