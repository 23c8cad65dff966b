package validators

import (
	"net/http"
	"strings"

	"restaurant-app-api/internal/errors"
)

type authValidator struct{}

func NewAuthValidator() AuthValidator {
	return &authValidator{}
}

// ValidatePhone trims surrounding whitespace and rejects phones that are
// empty afterwards. No format validation beyond that: the demo flow accepts
// any non-empty string as a phone number.
func (v *authValidator) ValidatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", errors.NewAppError(
			"phone number empty after trimming",
			errors.MsgPhoneRequired,
			errors.ErrCodePhoneRequired,
			http.StatusBadRequest,
			nil,
		)
	}
	return phone, nil
}
