package validators

import (
	"net/http"
	"testing"

	"restaurant-app-api/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhoneTrims(t *testing.T) {
	phone, err := NewAuthValidator().ValidatePhone("  555-0100  ")

	require.NoError(t, err)
	assert.Equal(t, "555-0100", phone)
}

func TestValidatePhoneRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NewAuthValidator().ValidatePhone(input)

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, errors.ErrCodePhoneRequired, appErr.Code)
	}
}
