package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/domain/service"
	"enroll/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountRepo implements repository.AccountRepository in memory, keyed by
// email, mirroring the store's unique constraint.
type fakeAccountRepo struct {
	byEmail   map[string]*entity.Account
	createErr error
	findErr   error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]*entity.Account{}}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[account.Email]; ok {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	f.byEmail[account.Email] = &stored

	return nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	for _, account := range f.byEmail {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// fakeHasher implements service.PasswordHasher with a reversible marker so
// tests can observe exactly what was stored.
type fakeHasher struct {
	strengthErr error
	hashErr     error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.strengthErr != nil {
		return "", f.strengthErr
	}
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (f *fakeHasher) ValidatePasswordStrength(_ string) error {
	return f.strengthErr
}

// fakeTokenService implements service.TokenService deterministically.
type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) GenerateToken(accountID uuid.UUID, email string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	return "token-for-" + accountID.String() + "-" + email, nil
}

func (f *fakeTokenService) ValidateToken(_ string) (*service.Claims, error) {
	return nil, errors.New("not implemented in fake")
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration { return time.Hour }

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Password:  "Passw0rd!",
		Age:       20,
		Mobile:    "9876543210",
		Gender:    entity.GenderMale,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := NewAccountService(repo, &fakeHasher{}, &fakeTokenService{}, newDiscardLogger())

	output, err := srv.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEqual(t, uuid.Nil, output.AccountID)
	assert.Equal(t, "a@b.com", output.Profile.Email)

	// The stored digest is never the plaintext secret.
	stored := repo.byEmail["a@b.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Passw0rd!", stored.PasswordHash)
	assert.Equal(t, "hashed:Passw0rd!", stored.PasswordHash)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := NewAccountService(repo, &fakeHasher{}, &fakeTokenService{}, newDiscardLogger())

	_, err := srv.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Second attempt with the same email fails and leaves exactly one account.
	_, err = srv.Register(context.Background(), registerInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	assert.Len(t, repo.byEmail, 1)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	hasher := &fakeHasher{strengthErr: domainerrors.ErrPasswordStrength.WrapMessage("too weak")}
	srv := NewAccountService(repo, hasher, &fakeTokenService{}, newDiscardLogger())

	_, err := srv.Register(context.Background(), registerInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	assert.Empty(t, repo.byEmail)
}

func TestAccountService_Register_StoreFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.createErr = domainerrors.NewDatabaseExecuteError(errors.New("connection lost"), "failed to create account")
	srv := NewAccountService(repo, &fakeHasher{}, &fakeTokenService{}, newDiscardLogger())

	_, err := srv.Register(context.Background(), registerInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAccountService_Login_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := NewAccountService(repo, &fakeHasher{}, &fakeTokenService{}, newDiscardLogger())

	_, err := srv.Register(context.Background(), registerInput())
	require.NoError(t, err)

	output, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "Passw0rd!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, "A", output.Profile.FirstName)
	assert.Equal(t, "B", output.Profile.LastName)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := NewAccountService(repo, &fakeHasher{}, &fakeTokenService{}, newDiscardLogger())

	_, err := srv.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Wrong password for an existing account.
	_, wrongPassErr := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "WrongPass1!",
	})
	require.Error(t, wrongPassErr)
	assert.True(t, errors.Is(wrongPassErr, domainerrors.ErrInvalidCredentials))

	// Unknown email entirely.
	_, unknownEmailErr := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@b.com",
		Password: "Passw0rd!",
	})
	require.Error(t, unknownEmailErr)
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))

	// Both failures surface the same error value, so the response cannot
	// reveal whether the email exists.
	var wrongPassApp, unknownEmailApp domainerrors.AppError
	require.True(t, errors.As(wrongPassErr, &wrongPassApp))
	require.True(t, errors.As(unknownEmailErr, &unknownEmailApp))
	assert.Equal(t, wrongPassApp.ErrorCode(), unknownEmailApp.ErrorCode())
	assert.Equal(t, wrongPassApp.Message(), unknownEmailApp.Message())
	assert.Equal(t, wrongPassApp.HTTPCode(), unknownEmailApp.HTTPCode())
}

func TestAccountService_GetProfile(t *testing.T) {
	repo := newFakeAccountRepo()
	srv := NewAccountService(repo, &fakeHasher{}, &fakeTokenService{}, newDiscardLogger())

	output, err := srv.Register(context.Background(), registerInput())
	require.NoError(t, err)

	profile, err := srv.GetProfile(context.Background(), output.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)

	_, err = srv.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
