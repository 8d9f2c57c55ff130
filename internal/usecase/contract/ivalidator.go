package contract

// IValidator performs usecase-level input validation beyond binding tags.
type IValidator interface {
	// ValidateUsername checks the 2-20 character username constraint.
	ValidateUsername(username string) error
	// ValidatePassword checks the minimum password length constraint.
	ValidatePassword(password string) error
}
