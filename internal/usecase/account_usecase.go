// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"enroll/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Field shape is validated at the HTTP boundary before it reaches here.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Age       int
	Mobile    string
	Gender    entity.Gender
	ImageRef  string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's identifier and
// displayable profile. Registration deliberately does not issue a token;
// the caller must log in separately.
type RegisterOutput struct {
	AccountID uuid.UUID       `json:"accountId"`
	Profile   *entity.Profile `json:"profile"`
}

// LoginOutput returns the bearer token and the minimal profile fields the
// client needs for display.
type LoginOutput struct {
	Token   string          `json:"token"`
	Profile *entity.Profile `json:"profile"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
}
