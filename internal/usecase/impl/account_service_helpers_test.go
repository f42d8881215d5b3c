package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"zilptext/config"
	"zilptext/internal/domain/repository"
	mockRepo "zilptext/internal/mocks/repository"
	mockSvc "zilptext/internal/mocks/service"
	"zilptext/internal/usecase"
)

// stubTxManager runs the transactional function against a fixed factory,
// standing in for a real database transaction.
type stubTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if s.err != nil {
		return s.err
	}

	return fn(s.factory)
}

// stubRepoFactory hands out the test's repository mocks as if they were bound
// to the transaction.
type stubRepoFactory struct {
	accountRepo repository.AccountRepository
	plateRepo   repository.PlateRepository
}

func (s *stubRepoFactory) AccountRepo() repository.AccountRepository {
	return s.accountRepo
}

func (s *stubRepoFactory) PlateRepo() repository.PlateRepository {
	return s.plateRepo
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	plateRepo    *mockRepo.MockPlateRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	verifier     *mockSvc.MockVerificationTokenService
	mailer       *mockSvc.MockMailer
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	plateRepo := mockRepo.NewMockPlateRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	verifier := mockSvc.NewMockVerificationTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := &stubTxManager{
		factory: &stubRepoFactory{accountRepo: accountRepo, plateRepo: plateRepo},
	}

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Verifier:     verifier,
		Mailer:       mailer,
		Config:       &config.Config{Storage: &config.StorageConfig{ProfilePicDir: "/srv/profile-pics"}},
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		plateRepo:    plateRepo,
		hasher:       hasher,
		tokenService: tokenService,
		verifier:     verifier,
		mailer:       mailer,
	}
}
