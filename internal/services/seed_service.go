package services

import (
	"context"
	stderrors "errors"
	"time"

	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/repositories"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/logger"
)

// SeedService populates demonstration data on startup so listing endpoints
// return non-empty results on a fresh deployment. Each collection is seeded
// only when empty, making restarts no-ops. The emptiness check and the
// insert are not atomic at the store level: two cold starts racing each
// other can double-seed.
type SeedService struct {
	restaurants repositories.RestaurantRepository
	products    repositories.ProductRepository
}

func NewSeedService(restaurants repositories.RestaurantRepository, products repositories.ProductRepository) *SeedService {
	return &SeedService{
		restaurants: restaurants,
		products:    products,
	}
}

// Run executes the seed. An unavailable store is not an error: the service
// simply starts with empty listings.
func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.restaurants.Count(ctx)
	if err != nil {
		if stderrors.Is(err, database.ErrUnavailable) {
			logger.GlobalLogger.Println("Store unavailable, skipping seed")
			return nil
		}
		return err
	}
	if count == 0 {
		if err := s.restaurants.InsertMany(ctx, seedRestaurants()); err != nil {
			return err
		}
		logger.GlobalLogger.Println("Seeded restaurant collection")
	}

	count, err = s.products.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		ids, err := s.restaurantIDsByName(ctx)
		if err != nil {
			return err
		}
		if err := s.products.InsertMany(ctx, seedProducts(ids)); err != nil {
			return err
		}
		logger.GlobalLogger.Println("Seeded product collection")
	}

	return nil
}

// restaurantIDsByName reads back all restaurant documents and maps each
// restaurant name to its normalized string identifier.
func (s *SeedService) restaurantIDsByName(ctx context.Context) (map[string]string, error) {
	docs, err := s.restaurants.FindAllDocuments(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]string, len(docs))
	for _, doc := range docs {
		normalized := transformers.NormalizeDocument(doc)
		name, _ := normalized["name"].(string)
		id, _ := normalized["id"].(string)
		if name != "" {
			ids[name] = id
		}
	}
	return ids, nil
}

func seedRestaurants() []models.Restaurant {
	now := time.Now().UTC()
	return []models.Restaurant{
		{
			Name:        "Spice Garden",
			Description: "Authentic Indian cuisine with a modern twist",
			Address:     "123 Curry Ave",
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1600&auto=format&fit=crop",
			Rating:      4.6,
			Cuisine:     "Indian",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Name:        "Pasta Piazza",
			Description: "Fresh handmade pastas and rustic sauces",
			Address:     "45 Roma Street",
			Image:       "https://images.unsplash.com/photo-1523986371872-9d3ba2e2f642?q=80&w=1600&auto=format&fit=crop",
			Rating:      4.7,
			Cuisine:     "Italian",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// seedProducts cross-references the owning restaurant by name. An absent
// name yields an empty restaurant_id, a dangling reference the API accepts.
func seedProducts(restaurantIDs map[string]string) []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			Title:        "Butter Chicken",
			Description:  "Creamy tomato sauce with tender chicken",
			Price:        12.99,
			Image:        "https://images.unsplash.com/photo-1604909052743-88e0b01e6e8b?q=80&w=1600&auto=format&fit=crop",
			RestaurantID: restaurantIDs["Spice Garden"],
			Tags:         []string{"spicy", "non-veg"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Title:        "Paneer Tikka",
			Description:  "Grilled cottage cheese with spices",
			Price:        9.5,
			Image:        "https://images.unsplash.com/photo-1625944528146-1b02d4ca9d24?q=80&w=1600&auto=format&fit=crop",
			RestaurantID: restaurantIDs["Spice Garden"],
			Tags:         []string{"veg", "grill"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Title:        "Penne Arrabbiata",
			Description:  "Spicy tomato sauce with garlic and chili",
			Price:        10.99,
			Image:        "https://images.unsplash.com/photo-1473093295043-cdd812d0e601?q=80&w=1600&auto=format&fit=crop",
			RestaurantID: restaurantIDs["Pasta Piazza"],
			Tags:         []string{"veg", "pasta"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
