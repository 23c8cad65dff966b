package cache

import "fmt"

// cache key for the list of all restaurants.
func RestaurantListKey() string {
	return "restaurants:list"
}

// cache key for a specific restaurant.
func RestaurantKey(id string) string {
	return fmt.Sprintf("restaurant:%s", id)
}

// cache key for the list of all products.
func ProductListKey() string {
	return "products:list"
}

// cache key for a specific product.
func ProductKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// cache key for the products of a restaurant.
func RestaurantProductsKey(restaurantID string) string {
	return fmt.Sprintf("restaurant:%s:products", restaurantID)
}
