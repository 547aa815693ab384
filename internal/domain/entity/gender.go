// Package entity contains the core business objects of the project.
package entity

// Gender represents the gender recorded on an account.
type Gender string

const (
	// GenderMale indicates a male account holder.
	GenderMale Gender = "male"
	// GenderFemale indicates a female account holder.
	GenderFemale Gender = "female"
	// GenderOther indicates any other gender.
	GenderOther Gender = "other"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
