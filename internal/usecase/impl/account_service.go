// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"zilptext/config"
	deliverycontext "zilptext/internal/delivery/context"
	"zilptext/internal/domain/entity"
	domainerrors "zilptext/internal/domain/errors"
	"zilptext/internal/domain/repository"
	"zilptext/internal/domain/service"
	"zilptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mailDispatchTimeout = 30 * time.Second

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	verifier      service.VerificationTokenService
	mailer        service.Mailer
	profilePicDir string
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.VerificationTokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	profilePicDir := ""
	if params.Config != nil && params.Config.Storage != nil {
		profilePicDir = params.Config.Storage.ProfilePicDir
	}

	return &accountService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		verifier:      params.Verifier,
		mailer:        params.Mailer,
		profilePicDir: profilePicDir,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete password-path registration: plate
// ownership check, account creation and owner registration happen inside a
// single transaction, then the verification email is dispatched.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hashedPassword,
		Provider:     entity.ProviderLocal,
		Verified:     false,
	}

	if err := srv.createOwnedAccount(ctx, account, input.PlateNumber); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Account registered", slog.String("accountID", account.ID.String()))

	// The email is fire-and-forget: a delivery failure is logged but never
	// fails the registration that already committed.
	go srv.dispatchVerification(account)

	return &usecase.RegisterOutput{AccountID: account.ID}, nil
}

// RegisterSocial creates an account from an externally-asserted identity.
// No local secret is stored and no verification gate applies: the external
// assertion substitutes for email verification, so a session token is
// returned immediately.
func (srv *accountService) RegisterSocial(ctx context.Context, input *usecase.SocialRegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting social registration", slog.String("email", input.Email))

	account := &entity.Account{
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Provider:  entity.ProviderSocial,
		Verified:  true,
	}

	if err := srv.createOwnedAccount(ctx, account, input.PlateNumber); err != nil {
		return nil, err
	}

	return srv.issueSession(ctx, account)
}

// createOwnedAccount runs the registration writes in one transaction:
// owner-plate check, account row, owner registration row. The partial unique
// index on owner registrations backs the check under concurrency.
func (srv *accountService) createOwnedAccount(ctx context.Context, account *entity.Account, plateNumber string) error {
	plate := entity.NormalizePlate(plateNumber)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		plateRepo := repoFactory.PlateRepo()

		_, err := plateRepo.FindOwner(ctx, plate)
		if err == nil {
			return domainerrors.ErrPlateAlreadyOwned.WrapMessage("plate already has an owner")
		}
		if !errors.Is(err, repository.ErrPlateNotFound) {
			return errors.Wrap(err, "failed to look up plate owner")
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			return translateAccountCreateError(err)
		}

		registration := &entity.PlateRegistration{
			AccountID:   account.ID,
			PlateNumber: plate,
			IsOwner:     true,
		}
		if err := plateRepo.Create(ctx, registration); err != nil {
			if errors.Is(err, repository.ErrPlateOwned) {
				// Lost the race against a concurrent registration.
				return domainerrors.ErrPlateAlreadyOwned.WrapMessage("plate owner registered concurrently")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", account.Email), slog.String("error", err.Error()))

		return err
	}

	return nil
}

func translateAccountCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrEmailTaken):
		return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	case errors.Is(err, repository.ErrPhoneTaken):
		return domainerrors.ErrPhoneTaken.WrapMessage("phone already registered")
	default:
		return errors.WithStack(err)
	}
}

// Login authenticates an email-or-phone identifier against the stored
// password hash. Unknown identifier and bad password both answer with
// ErrWrongCredentials so the caller cannot enumerate accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	loginID := strings.TrimSpace(input.LoginID)
	srv.log(ctx).Debug("Login attempt")

	account, err := srv.accountRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrWrongCredentials.WrapMessage("unknown login identifier")
		}

		return nil, errors.Wrap(err, "failed to look up account by login id")
	}

	// An empty stored hash (social account) never matches.
	if !account.HasLocalCredential() || !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrWrongCredentials.WrapMessage("password mismatch")
	}

	if !account.Verified {
		return nil, domainerrors.ErrAccountNotVerified.WrapMessage("login before verification")
	}

	return srv.issueSession(ctx, account)
}

// SocialLogin authenticates an externally-asserted name claim. There is no
// password or verification check; the no-match path answers exactly like a
// credential failure.
func (srv *accountService) SocialLogin(ctx context.Context, input *usecase.SocialLoginInput) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByName(ctx, strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrWrongCredentials.WrapMessage("unknown social identity")
		}

		return nil, errors.Wrap(err, "failed to look up account by name")
	}

	return srv.issueSession(ctx, account)
}

func (srv *accountService) issueSession(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(account.ID, account.FirstName, account.LastName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Session issued", slog.String("accountID", account.ID.String()))

	return &usecase.AuthOutput{
		Token:     token,
		AccountID: account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}, nil
}

// VerifyEmail validates an emailed token and flips the account to verified.
// Every failure is explicit: an unknown address answers ErrAccountNotFound
// and a bad token answers ErrTokenInvalid. Re-submitting a token for an
// already verified account is an idempotent success.
func (srv *accountService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	email := strings.TrimSpace(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("verification for unknown email")
		}

		return errors.Wrap(err, "failed to look up account by email")
	}

	if err := srv.verifier.Verify(account, input.Token); err != nil {
		if errors.Is(err, service.ErrVerificationTokenInvalid) {
			return domainerrors.ErrTokenInvalid.WrapMessage("verification token rejected")
		}

		return errors.Wrap(err, "failed to verify token")
	}

	if account.Verified {
		srv.log(ctx).Debug("Account already verified", slog.String("accountID", account.ID.String()))

		return nil
	}

	if err := srv.accountRepo.MarkVerified(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to mark account verified")
	}
	srv.log(ctx).Info("Account verified", slog.String("accountID", account.ID.String()))

	return nil
}

// ProfilePicPath resolves the stored profile picture file for an account.
func (srv *accountService) ProfilePicPath(ctx context.Context, accountID uuid.UUID) (string, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", domainerrors.ErrAccountNotFound.WrapMessage("profile picture for unknown account")
		}

		return "", errors.Wrap(err, "failed to look up account by id")
	}

	if account.ProfilePic == "" {
		return "", domainerrors.ErrAccountNotFound.WrapMessage("account has no profile picture")
	}

	return filepath.Join(srv.profilePicDir, account.ProfilePic), nil
}

// dispatchVerification derives and emails the verification token. It runs on
// its own context so it survives the originating request.
func (srv *accountService) dispatchVerification(account *entity.Account) {
	ctx, cancel := context.WithTimeout(context.Background(), mailDispatchTimeout)
	defer cancel()

	token, err := srv.verifier.Issue(account)
	if err != nil {
		srv.logger.Error("Failed to issue verification token",
			slog.String("accountID", account.ID.String()), slog.String("error", err.Error()))

		return
	}

	if err := srv.mailer.SendVerificationEmail(ctx, account.Email, token); err != nil {
		srv.logger.Error("Failed to send verification email",
			slog.String("email", account.Email), slog.String("error", err.Error()))

		return
	}

	srv.logger.Info("Verification email dispatched", slog.String("email", account.Email))
}
