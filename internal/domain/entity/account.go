// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single registered
// person. The email address is the login identifier and is unique across all
// accounts; the database constraint is the arbiter of concurrent
// registrations for the same address.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The account's login identifier. Unique, case-sensitive.
	FirstName    string    // The account holder's first name.
	LastName     string    // The account holder's last name.
	Age          int       // The account holder's age. Registration requires age >= 18.
	Mobile       string    // A 10-digit mobile number.
	Gender       Gender    // One of male, female or other.
	ImageRef     string    // Optional URL of the uploaded profile image.
	PasswordHash string    // The bcrypt digest of the password. The plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Profile is the subset of account data safe to hand back to a client for
// display. It never includes the password hash.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	ImageRef  string `json:"imageRef,omitempty"`
}

// ProfileOf extracts the displayable profile from an account.
func ProfileOf(account *Account) *Profile {
	if account == nil {
		return nil
	}

	return &Profile{
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		ImageRef:  account.ImageRef,
	}
}
