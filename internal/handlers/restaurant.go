package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"restaurant-app-api/internal/services"
)

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListRestaurants godoc
// @Summary List all restaurants
// @Description Returns every restaurant; an empty array when the store is unavailable
// @Tags Restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.restaurantService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get a restaurant by id
// @Tags Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.RestaurantResponse
// @Failure 404 {object} map[string]interface{}
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// ListRestaurantProducts godoc
// @Summary List the products of a restaurant
// @Description Filters products by literal restaurant_id match; an empty array when the store is unavailable
// @Tags Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} models.ProductResponse
// @Router /restaurants/{id}/products [get]
func (h *RestaurantHandler) ListRestaurantProducts(c *gin.Context) {
	products, err := h.restaurantService.ListProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}
