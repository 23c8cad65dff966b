package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant is written only by the startup seed; the API never mutates it.
type Restaurant struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" binding:"required"`
	Description string             `json:"description" bson:"description"`
	Address     string             `json:"address" bson:"address"`
	Image       string             `json:"image" bson:"image"`
	Rating      float64            `json:"rating" bson:"rating" binding:"gte=0,lte=5"`
	Cuisine     string             `json:"cuisine" bson:"cuisine"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// RestaurantResponse is the API shape of a restaurant. Timestamps are
// internal and not exposed.
type RestaurantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Cuisine     string  `json:"cuisine"`
}
