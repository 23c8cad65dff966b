package validators

// AuthValidator validates auth request input.
type AuthValidator interface {
	// ValidatePhone trims the phone number and rejects empty input.
	ValidatePhone(phone string) (string, error)
}
