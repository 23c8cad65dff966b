package repositories

import (
	"context"
	"time"

	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
)

type productRepository struct {
	store *database.Store
}

func NewProductRepository(store *database.Store) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	collection, err := r.store.Collection(database.CollectionProduct)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	count, err := collection.CountDocuments(ctx, bson.M{})
	metrics.MongoOperationDuration.WithLabelValues("count", database.CollectionProduct).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count", database.CollectionProduct).Inc()
		return 0, err
	}
	return count, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *productRepository) FindByRestaurantID(ctx context.Context, restaurantID string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"restaurant_id": restaurantID})
}

func (r *productRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	collection, err := r.store.Collection(database.CollectionProduct)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cursor, err := collection.Find(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollectionProduct).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollectionProduct).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollectionProduct).Inc()
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id transformers.DocID) (*models.Product, error) {
	collection, err := r.store.Collection(database.CollectionProduct)
	if err != nil {
		return nil, err
	}

	var product models.Product
	start := time.Now()
	err = collection.FindOne(ctx, bson.M{"_id": id.Filter()}).Decode(&product)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollectionProduct).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollectionProduct).Inc()
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) InsertMany(ctx context.Context, products []models.Product) error {
	collection, err := r.store.Collection(database.CollectionProduct)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(products))
	for i := range products {
		docs = append(docs, products[i])
	}

	start := time.Now()
	_, err = collection.InsertMany(ctx, docs)
	metrics.MongoOperationDuration.WithLabelValues("insert_many", database.CollectionProduct).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert_many", database.CollectionProduct).Inc()
		return err
	}
	return nil
}
