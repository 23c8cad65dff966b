package services

import (
	"context"
	"net/http"
	"testing"

	"restaurant-app-api/internal/errors"
	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/transformers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRestaurantService(restaurants *fakeRestaurantRepo, products *fakeProductRepo) *RestaurantService {
	return NewRestaurantService(restaurants, products, transformers.NewRestaurantTransformer(), transformers.NewProductTransformer())
}

func TestRestaurantListEmptyStore(t *testing.T) {
	svc := newRestaurantService(&fakeRestaurantRepo{}, &fakeProductRepo{})

	out, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRestaurantListStoreUnavailable(t *testing.T) {
	svc := newRestaurantService(&fakeRestaurantRepo{unavailable: true}, &fakeProductRepo{})

	out, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRestaurantGetByID(t *testing.T) {
	restaurant := models.Restaurant{ID: primitive.NewObjectID(), Name: "Spice Garden", Rating: 4.6}
	svc := newRestaurantService(&fakeRestaurantRepo{restaurants: []models.Restaurant{restaurant}}, &fakeProductRepo{})

	out, err := svc.GetByID(context.Background(), restaurant.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, restaurant.ID.Hex(), out.ID)
	assert.Equal(t, "Spice Garden", out.Name)
}

func TestRestaurantGetByIDUnknown(t *testing.T) {
	svc := newRestaurantService(&fakeRestaurantRepo{}, &fakeProductRepo{})

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestRestaurantGetByIDMalformed(t *testing.T) {
	// A malformed id falls back to a literal lookup and misses: not-found,
	// never a validation error.
	svc := newRestaurantService(&fakeRestaurantRepo{}, &fakeProductRepo{})

	_, err := svc.GetByID(context.Background(), "definitely-not-an-object-id")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, err.(*errors.AppError).HTTPStatus)
}

func TestRestaurantGetByIDStoreUnavailable(t *testing.T) {
	svc := newRestaurantService(&fakeRestaurantRepo{unavailable: true}, &fakeProductRepo{})

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, err.(*errors.AppError).HTTPStatus)
}

func TestRestaurantListProductsLiteralMatch(t *testing.T) {
	oid := primitive.NewObjectID()
	products := &fakeProductRepo{products: []models.Product{
		{ID: primitive.NewObjectID(), Title: "Butter Chicken", RestaurantID: oid.Hex()},
		{ID: primitive.NewObjectID(), Title: "Penne Arrabbiata", RestaurantID: "other"},
	}}
	svc := newRestaurantService(&fakeRestaurantRepo{}, products)

	out, err := svc.ListProducts(context.Background(), oid.Hex())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Butter Chicken", out[0].Title)
}

func TestRestaurantListProductsStoreUnavailable(t *testing.T) {
	svc := newRestaurantService(&fakeRestaurantRepo{}, &fakeProductRepo{unavailable: true})

	out, err := svc.ListProducts(context.Background(), "anything")

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestProductList(t *testing.T) {
	products := &fakeProductRepo{products: []models.Product{
		{ID: primitive.NewObjectID(), Title: "Paneer Tikka", Price: 9.5},
	}}
	svc := NewProductService(products, transformers.NewProductTransformer())

	out, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Paneer Tikka", out[0].Title)
	assert.NotNil(t, out[0].Tags)
}

func TestProductListStoreUnavailable(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{unavailable: true}, transformers.NewProductTransformer())

	out, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestProductGetByIDUnknown(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{}, transformers.NewProductTransformer())

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, errors.ErrCodeProductNotFound, appErr.Code)
}
