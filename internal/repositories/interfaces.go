package repositories

import (
	"context"

	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/transformers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// All repository methods return database.ErrUnavailable when the store is
// not connected, and mongo.ErrNoDocuments for single-document misses.

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// Touch resets verification ahead of a new OTP and records the login attempt.
	Touch(ctx context.Context, id primitive.ObjectID, lastLogin string) error
	// MarkVerified flips is_verified after a successful OTP check.
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
}

// RestaurantRepository defines the interface for restaurant data operations.
type RestaurantRepository interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	// FindAllDocuments returns raw documents, for callers that need the
	// store-native identifier field.
	FindAllDocuments(ctx context.Context) ([]bson.M, error)
	FindByID(ctx context.Context, id transformers.DocID) (*models.Restaurant, error)
	InsertMany(ctx context.Context, restaurants []models.Restaurant) error
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id transformers.DocID) (*models.Product, error)
	// FindByRestaurantID filters on the literal restaurant_id string with no
	// identifier parsing applied.
	FindByRestaurantID(ctx context.Context, restaurantID string) ([]models.Product, error)
	InsertMany(ctx context.Context, products []models.Product) error
}
