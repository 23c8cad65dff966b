package services

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"restaurant-app-api/internal/errors"
	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/repositories"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/pkg/cache"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/logger"
)

// Catalog responses change only when the seed runs on a fresh store, so
// cached entries never need invalidation.
const catalogCacheTTL = 10 * time.Minute

type RestaurantService struct {
	restaurants  repositories.RestaurantRepository
	products     repositories.ProductRepository
	transformer  transformers.RestaurantTransformer
	productTrans transformers.ProductTransformer
}

func NewRestaurantService(
	restaurants repositories.RestaurantRepository,
	products repositories.ProductRepository,
	transformer transformers.RestaurantTransformer,
	productTrans transformers.ProductTransformer,
) *RestaurantService {
	return &RestaurantService{
		restaurants:  restaurants,
		products:     products,
		transformer:  transformer,
		productTrans: productTrans,
	}
}

// List returns all restaurants. An unavailable store degrades to an empty
// list rather than an error.
func (s *RestaurantService) List(ctx context.Context) ([]models.RestaurantResponse, error) {
	key := cache.RestaurantListKey()
	var cached []models.RestaurantResponse
	if err := cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	restaurants, err := s.restaurants.FindAll(ctx)
	if err != nil {
		if stderrors.Is(err, database.ErrUnavailable) {
			return []models.RestaurantResponse{}, nil
		}
		return nil, errors.MapError(err)
	}

	response := s.transformer.ToResponseList(restaurants)
	if err := cache.Set(ctx, key, response, catalogCacheTTL); err != nil && err != cache.ErrDisabled {
		logger.GlobalLogger.Debugf("failed to cache restaurant list: %v", err)
	}
	return response, nil
}

// GetByID fetches one restaurant by its public identifier. Malformed ids
// fall back to a literal lookup, so they miss and report not-found; an
// unavailable store reports not-found as well.
func (s *RestaurantService) GetByID(ctx context.Context, rawID string) (*models.RestaurantResponse, error) {
	key := cache.RestaurantKey(rawID)
	var cached models.RestaurantResponse
	if err := cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	restaurant, err := s.restaurants.FindByID(ctx, transformers.ParseID(rawID))
	if err != nil {
		return nil, errors.NewAppError(
			"restaurant lookup failed for id "+rawID,
			errors.MsgRestaurantNotFound,
			errors.ErrCodeRestaurantNotFound,
			http.StatusNotFound,
			err,
		)
	}

	response := s.transformer.ToResponse(restaurant)
	if err := cache.Set(ctx, key, response, catalogCacheTTL); err != nil && err != cache.ErrDisabled {
		logger.GlobalLogger.Debugf("failed to cache restaurant %s: %v", rawID, err)
	}
	return response, nil
}

// ListProducts returns the products whose restaurant_id equals the given
// path parameter, compared as a literal string with no identifier parsing.
func (s *RestaurantService) ListProducts(ctx context.Context, restaurantID string) ([]models.ProductResponse, error) {
	key := cache.RestaurantProductsKey(restaurantID)
	var cached []models.ProductResponse
	if err := cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	products, err := s.products.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		if stderrors.Is(err, database.ErrUnavailable) {
			return []models.ProductResponse{}, nil
		}
		return nil, errors.MapError(err)
	}

	response := s.productTrans.ToResponseList(products)
	if err := cache.Set(ctx, key, response, catalogCacheTTL); err != nil && err != cache.ErrDisabled {
		logger.GlobalLogger.Debugf("failed to cache products for restaurant %s: %v", restaurantID, err)
	}
	return response, nil
}
