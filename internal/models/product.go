package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a menu item. RestaurantID is a plain string reference to a
// restaurant's normalized id; it is never validated against the restaurant
// collection and may dangle.
type Product struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title" binding:"required"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price" binding:"gte=0"`
	Image        string             `json:"image" bson:"image"`
	RestaurantID string             `json:"restaurant_id" bson:"restaurant_id"`
	Tags         []string           `json:"tags" bson:"tags"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	RestaurantID string   `json:"restaurant_id"`
	Tags         []string `json:"tags"`
}
