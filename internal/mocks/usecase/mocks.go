// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"zilptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase mocks usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *MockAccountUsecase) RegisterSocial(ctx context.Context, input *usecase.SocialRegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockAccountUsecase) SocialLogin(ctx context.Context, input *usecase.SocialLoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockAccountUsecase) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAccountUsecase) ProfilePicPath(ctx context.Context, accountID uuid.UUID) (string, error) {
	args := m.Called(ctx, accountID)

	return args.String(0), args.Error(1)
}
