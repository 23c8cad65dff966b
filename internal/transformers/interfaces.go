package transformers

import (
	"restaurant-app-api/internal/models"
)

// UserTransformer converts stored users to their API shape.
type UserTransformer interface {
	ToResponse(user *models.User) *models.UserResponse
}

// RestaurantTransformer converts stored restaurants to their API shape.
type RestaurantTransformer interface {
	ToResponse(restaurant *models.Restaurant) *models.RestaurantResponse
	ToResponseList(restaurants []models.Restaurant) []models.RestaurantResponse
}

// ProductTransformer converts stored products to their API shape.
type ProductTransformer interface {
	ToResponse(product *models.Product) *models.ProductResponse
	ToResponseList(products []models.Product) []models.ProductResponse
}
