package services

import (
	"context"
	"testing"

	"restaurant-app-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSeedFreshStore(t *testing.T) {
	restaurants := &fakeRestaurantRepo{}
	products := &fakeProductRepo{}
	svc := NewSeedService(restaurants, products)

	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, restaurants.restaurants, 2)
	require.Len(t, products.products, 3)

	byName := map[string]string{}
	for _, r := range restaurants.restaurants {
		byName[r.Name] = r.ID.Hex()
	}
	require.Contains(t, byName, "Spice Garden")
	require.Contains(t, byName, "Pasta Piazza")

	var spiceGarden, pastaPiazza int
	for _, p := range products.products {
		switch p.RestaurantID {
		case byName["Spice Garden"]:
			spiceGarden++
		case byName["Pasta Piazza"]:
			pastaPiazza++
		}
	}
	assert.Equal(t, 2, spiceGarden)
	assert.Equal(t, 1, pastaPiazza)
}

func TestSeedIdempotent(t *testing.T) {
	restaurants := &fakeRestaurantRepo{}
	products := &fakeProductRepo{}
	svc := NewSeedService(restaurants, products)

	require.NoError(t, svc.Run(context.Background()))
	require.NoError(t, svc.Run(context.Background()))

	assert.Equal(t, 1, restaurants.insertCalls)
	assert.Equal(t, 1, products.insertCalls)
	assert.Len(t, restaurants.restaurants, 2)
	assert.Len(t, products.products, 3)
}

func TestSeedStoreUnavailable(t *testing.T) {
	svc := NewSeedService(&fakeRestaurantRepo{unavailable: true}, &fakeProductRepo{unavailable: true})

	assert.NoError(t, svc.Run(context.Background()))
}

func TestSeedProductsAgainstExistingRestaurants(t *testing.T) {
	existing := models.Restaurant{ID: primitive.NewObjectID(), Name: "Spice Garden"}
	restaurants := &fakeRestaurantRepo{restaurants: []models.Restaurant{existing}}
	products := &fakeProductRepo{}
	svc := NewSeedService(restaurants, products)

	require.NoError(t, svc.Run(context.Background()))

	// Restaurants were non-empty, so only products are seeded. Pasta Piazza
	// is absent from the lookup, leaving that product with a dangling empty
	// reference.
	assert.Equal(t, 0, restaurants.insertCalls)
	require.Len(t, products.products, 3)
	for _, p := range products.products {
		switch p.Title {
		case "Butter Chicken", "Paneer Tikka":
			assert.Equal(t, existing.ID.Hex(), p.RestaurantID)
		case "Penne Arrabbiata":
			assert.Equal(t, "", p.RestaurantID)
		}
	}
}
