package transformers

import (
	"restaurant-app-api/internal/models"
)

type userTransformer struct{}

func NewUserTransformer() UserTransformer {
	return &userTransformer{}
}

func (t *userTransformer) ToResponse(user *models.User) *models.UserResponse {
	if user == nil {
		return nil
	}
	return &models.UserResponse{
		ID:         user.ID.Hex(),
		Phone:      user.Phone,
		Name:       user.Name,
		IsVerified: user.IsVerified,
		LastLogin:  user.LastLogin,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

type restaurantTransformer struct{}

func NewRestaurantTransformer() RestaurantTransformer {
	return &restaurantTransformer{}
}

func (t *restaurantTransformer) ToResponse(restaurant *models.Restaurant) *models.RestaurantResponse {
	if restaurant == nil {
		return nil
	}
	return &models.RestaurantResponse{
		ID:          restaurant.ID.Hex(),
		Name:        restaurant.Name,
		Description: restaurant.Description,
		Address:     restaurant.Address,
		Image:       restaurant.Image,
		Rating:      restaurant.Rating,
		Cuisine:     restaurant.Cuisine,
	}
}

func (t *restaurantTransformer) ToResponseList(restaurants []models.Restaurant) []models.RestaurantResponse {
	// Always a non-nil slice so empty listings serialize as [] rather than null.
	out := make([]models.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, *t.ToResponse(&restaurants[i]))
	}
	return out
}

type productTransformer struct{}

func NewProductTransformer() ProductTransformer {
	return &productTransformer{}
}

func (t *productTransformer) ToResponse(product *models.Product) *models.ProductResponse {
	if product == nil {
		return nil
	}
	tags := product.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.ProductResponse{
		ID:           product.ID.Hex(),
		Title:        product.Title,
		Description:  product.Description,
		Price:        product.Price,
		Image:        product.Image,
		RestaurantID: product.RestaurantID,
		Tags:         tags,
	}
}

func (t *productTransformer) ToResponseList(products []models.Product) []models.ProductResponse {
	out := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *t.ToResponse(&products[i]))
	}
	return out
}
