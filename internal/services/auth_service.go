package services

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"restaurant-app-api/internal/errors"
	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/repositories"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DemoOTP is the fixed verification code. There is no SMS delivery; the code
// is returned directly in the send-otp response.
const DemoOTP = "1234"

// OTPMessage accompanies every issued code.
const OTPMessage = "OTP generated. Use 1234 for demo."

type AuthService struct {
	users       repositories.UserRepository
	validator   validators.AuthValidator
	transformer transformers.UserTransformer
}

func NewAuthService(users repositories.UserRepository, validator validators.AuthValidator, transformer transformers.UserTransformer) *AuthService {
	return &AuthService{
		users:       users,
		validator:   validator,
		transformer: transformer,
	}
}

// RequestCode upserts the user for the given phone and issues the demo code.
// An existing user has verification reset; a new user starts unverified.
// Exactly one store write per call.
func (s *AuthService) RequestCode(ctx context.Context, phone string) (string, error) {
	phone, err := s.validator.ValidatePhone(phone)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	lastLogin := now.Format(time.RFC3339)

	user, err := s.users.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		if err := s.users.Touch(ctx, user.ID, lastLogin); err != nil {
			return "", errors.MapError(err)
		}
	case stderrors.Is(err, mongo.ErrNoDocuments):
		newUser := &models.User{
			ID:         primitive.NewObjectID(),
			Phone:      phone,
			Name:       nil,
			IsVerified: false,
			LastLogin:  &lastLogin,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.users.Create(ctx, newUser); err != nil {
			return "", errors.MapError(err)
		}
	default:
		return "", errors.MapError(err)
	}

	return DemoOTP, nil
}

// VerifyCode checks the submitted code against the fixed value and, on
// match, marks the user verified and returns the normalized record. The
// code comparison happens before the user lookup, so a wrong code fails the
// same way whether or not the user exists.
func (s *AuthService) VerifyCode(ctx context.Context, phone, code string) (*models.UserResponse, error) {
	if code != DemoOTP {
		return nil, errors.NewAppError(
			"submitted code does not match the fixed demo value",
			errors.MsgInvalidOTP,
			errors.ErrCodeInvalidOTP,
			http.StatusBadRequest,
			nil,
		)
	}

	phone = strings.TrimSpace(phone)
	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(
				"no user for phone "+phone,
				errors.MsgUserNotFound,
				errors.ErrCodeUserNotFound,
				http.StatusNotFound,
				err,
			)
		}
		return nil, errors.MapError(err)
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, errors.MapError(err)
	}

	updated, err := s.users.FindByID(ctx, user.ID)
	if err != nil {
		return nil, errors.MapError(err)
	}
	return s.transformer.ToResponse(updated), nil
}
