package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a phone-identified account. Phone is unique by convention of the
// OTP flow, not enforced by the store. LastLogin is kept as an ISO-8601
// string, matching what the auth flow writes.
type User struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Phone      string             `json:"phone" bson:"phone"`
	Name       *string            `json:"name" bson:"name"`
	IsVerified bool               `json:"is_verified" bson:"is_verified"`
	LastLogin  *string            `json:"last_login" bson:"last_login"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserResponse is the API shape of a user with the normalized string id.
type UserResponse struct {
	ID         string    `json:"id"`
	Phone      string    `json:"phone"`
	Name       *string   `json:"name"`
	IsVerified bool      `json:"is_verified"`
	LastLogin  *string   `json:"last_login"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SendOTPRequest is the payload for POST /auth/send-otp.
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required" example:"555-0100"`
}

// VerifyOTPRequest is the payload for POST /auth/verify.
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required" example:"555-0100"`
	OTP   string `json:"otp" binding:"required" example:"1234"`
}
