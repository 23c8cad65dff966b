package services

import (
	"context"
	"net/http"
	"testing"

	"restaurant-app-api/internal/errors"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, validators.NewAuthValidator(), transformers.NewUserTransformer())
}

func TestRequestCodeCreatesUser(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	otp, err := svc.RequestCode(context.Background(), "555-0100")

	require.NoError(t, err)
	assert.Equal(t, DemoOTP, otp)
	require.Len(t, users.users, 1)
	assert.Equal(t, "555-0100", users.users[0].Phone)
	assert.False(t, users.users[0].IsVerified)
	assert.NotNil(t, users.users[0].LastLogin)
}

func TestRequestCodeTrimsPhone(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.RequestCode(context.Background(), "  555-0100  ")

	require.NoError(t, err)
	require.Len(t, users.users, 1)
	assert.Equal(t, "555-0100", users.users[0].Phone)
}

func TestRequestCodeEmptyPhone(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})

	_, err := svc.RequestCode(context.Background(), "   ")

	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestRequestCodeTwiceUpdatesExistingUser(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.RequestCode(context.Background(), "555-0100")
	require.NoError(t, err)

	// Verify, then request again: verification must reset.
	_, err = svc.VerifyCode(context.Background(), "555-0100", DemoOTP)
	require.NoError(t, err)
	require.True(t, users.users[0].IsVerified)

	_, err = svc.RequestCode(context.Background(), "555-0100")
	require.NoError(t, err)

	assert.Len(t, users.users, 1)
	assert.False(t, users.users[0].IsVerified)
}

func TestRequestCodeStoreUnavailable(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{unavailable: true})

	_, err := svc.RequestCode(context.Background(), "555-0100")

	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, errors.ErrCodeStoreUnavailable, appErr.Code)
}

func TestVerifyCodeWrongCodeFailsRegardlessOfUser(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	// Unknown user
	_, err := svc.VerifyCode(context.Background(), "555-0100", "0000")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*errors.AppError).HTTPStatus)

	// Known user
	_, err = svc.RequestCode(context.Background(), "555-0100")
	require.NoError(t, err)
	_, err = svc.VerifyCode(context.Background(), "555-0100", "0000")
	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, errors.ErrCodeInvalidOTP, appErr.Code)
	assert.False(t, users.users[0].IsVerified)
}

func TestVerifyCodeUnknownPhone(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})

	_, err := svc.VerifyCode(context.Background(), "unknown", DemoOTP)

	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, errors.ErrCodeUserNotFound, appErr.Code)
}

func TestSendThenVerifyFlow(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	otp, err := svc.RequestCode(context.Background(), "555-0100")
	require.NoError(t, err)

	user, err := svc.VerifyCode(context.Background(), "555-0100", otp)
	require.NoError(t, err)

	assert.True(t, user.IsVerified)
	assert.Equal(t, "555-0100", user.Phone)
	assert.Equal(t, users.users[0].ID.Hex(), user.ID)
}

func TestVerifyCodeStoreUnavailable(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{unavailable: true})

	_, err := svc.VerifyCode(context.Background(), "555-0100", DemoOTP)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.(*errors.AppError).HTTPStatus)
}
