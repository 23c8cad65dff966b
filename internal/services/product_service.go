package services

import (
	"context"
	stderrors "errors"
	"net/http"

	"restaurant-app-api/internal/errors"
	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/repositories"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/pkg/cache"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/logger"
)

type ProductService struct {
	products    repositories.ProductRepository
	transformer transformers.ProductTransformer
}

func NewProductService(products repositories.ProductRepository, transformer transformers.ProductTransformer) *ProductService {
	return &ProductService{
		products:    products,
		transformer: transformer,
	}
}

// List returns all products, degrading to an empty list when the store is
// unavailable.
func (s *ProductService) List(ctx context.Context) ([]models.ProductResponse, error) {
	key := cache.ProductListKey()
	var cached []models.ProductResponse
	if err := cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		if stderrors.Is(err, database.ErrUnavailable) {
			return []models.ProductResponse{}, nil
		}
		return nil, errors.MapError(err)
	}

	response := s.transformer.ToResponseList(products)
	if err := cache.Set(ctx, key, response, catalogCacheTTL); err != nil && err != cache.ErrDisabled {
		logger.GlobalLogger.Debugf("failed to cache product list: %v", err)
	}
	return response, nil
}

// GetByID fetches one product by its public identifier. Any lookup failure,
// including an unavailable store, reports not-found.
func (s *ProductService) GetByID(ctx context.Context, rawID string) (*models.ProductResponse, error) {
	key := cache.ProductKey(rawID)
	var cached models.ProductResponse
	if err := cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	product, err := s.products.FindByID(ctx, transformers.ParseID(rawID))
	if err != nil {
		return nil, errors.NewAppError(
			"product lookup failed for id "+rawID,
			errors.MsgProductNotFound,
			errors.ErrCodeProductNotFound,
			http.StatusNotFound,
			err,
		)
	}

	response := s.transformer.ToResponse(product)
	if err := cache.Set(ctx, key, response, catalogCacheTTL); err != nil && err != cache.ErrDisabled {
		logger.GlobalLogger.Debugf("failed to cache product %s: %v", rawID, err)
	}
	return response, nil
}
