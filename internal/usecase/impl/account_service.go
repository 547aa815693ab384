// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"
	"log/slog"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/domain/service"
	"enroll/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts     repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts:     accounts,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete account registration process: password
// strength check, hashing, and a single insert whose unique email constraint
// rejects duplicates. No token is issued on success; the caller logs in
// separately.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting account registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		Mobile:       input.Mobile,
		Gender:       input.Gender,
		ImageRef:     input.ImageRef,
		PasswordHash: hashedPassword,
	}

	if err := srv.accounts.Create(ctx, newAccount); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			srv.logger.Info("Registration rejected, email already exists", "email", input.Email)

			return nil, errors.WithStack(err)
		}
		srv.logger.Error("Failed to persist account during registration", "error", err, "email", input.Email)

		return nil, errors.WithStack(err)
	}

	srv.logger.Debug("Account registered successfully", "accountID", newAccount.ID)

	return &usecase.RegisterOutput{
		AccountID: newAccount.ID,
		Profile:   entity.ProfileOf(newAccount),
	}, nil
}

// Login verifies the submitted credentials and issues a bearer token. A
// missing account and a wrong password produce the same error so callers
// cannot tell which field was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(account.ID, account.Email)
	if err != nil {
		srv.logger.Error("Failed to generate token", "error", err, "accountID", account.ID)

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.logger.Debug("Login successful", "accountID", account.ID)

	return &usecase.LoginOutput{
		Token:   token,
		Profile: entity.ProfileOf(account),
	}, nil
}

// GetProfile fetches the displayable profile for an authenticated account.
func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	account, err := srv.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return entity.ProfileOf(account), nil
}
