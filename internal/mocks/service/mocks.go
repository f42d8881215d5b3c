// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"zilptext/internal/domain/entity"
	"zilptext/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(accountID uuid.UUID, firstName, lastName string) (string, error) {
	args := m.Called(accountID, firstName, lastName)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

// MockVerificationTokenService mocks service.VerificationTokenService.
type MockVerificationTokenService struct {
	mock.Mock
}

func NewMockVerificationTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVerificationTokenService {
	m := &MockVerificationTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVerificationTokenService) Issue(account *entity.Account) (string, error) {
	args := m.Called(account)

	return args.String(0), args.Error(1)
}

func (m *MockVerificationTokenService) Verify(account *entity.Account, token string) error {
	args := m.Called(account, token)

	return args.Error(0)
}

// MockMailer mocks service.Mailer.
type MockMailer struct {
	mock.Mock

	// sent receives one value per SendVerificationEmail call so tests can
	// wait for the asynchronous dispatch goroutine.
	sent chan struct{}
}

func NewMockMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailer {
	m := &MockMailer{sent: make(chan struct{}, 8)}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	args := m.Called(ctx, email, token)
	select {
	case m.sent <- struct{}{}:
	default:
	}

	return args.Error(0)
}

// Sent exposes the delivery signal channel.
func (m *MockMailer) Sent() <-chan struct{} {
	return m.sent
}
