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

type restaurantRepository struct {
	store *database.Store
}

func NewRestaurantRepository(store *database.Store) RestaurantRepository {
	return &restaurantRepository{store: store}
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	collection, err := r.store.Collection(database.CollectionRestaurant)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	count, err := collection.CountDocuments(ctx, bson.M{})
	metrics.MongoOperationDuration.WithLabelValues("count", database.CollectionRestaurant).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count", database.CollectionRestaurant).Inc()
		return 0, err
	}
	return count, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	collection, err := r.store.Collection(database.CollectionRestaurant)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cursor, err := collection.Find(ctx, bson.M{})
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollectionRestaurant).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollectionRestaurant).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollectionRestaurant).Inc()
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) FindAllDocuments(ctx context.Context) ([]bson.M, error) {
	collection, err := r.store.Collection(database.CollectionRestaurant)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cursor, err := collection.Find(ctx, bson.M{})
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollectionRestaurant).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollectionRestaurant).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollectionRestaurant).Inc()
		return nil, err
	}
	return docs, nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id transformers.DocID) (*models.Restaurant, error) {
	collection, err := r.store.Collection(database.CollectionRestaurant)
	if err != nil {
		return nil, err
	}

	var restaurant models.Restaurant
	start := time.Now()
	err = collection.FindOne(ctx, bson.M{"_id": id.Filter()}).Decode(&restaurant)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollectionRestaurant).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollectionRestaurant).Inc()
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) InsertMany(ctx context.Context, restaurants []models.Restaurant) error {
	collection, err := r.store.Collection(database.CollectionRestaurant)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(restaurants))
	for i := range restaurants {
		docs = append(docs, restaurants[i])
	}

	start := time.Now()
	_, err = collection.InsertMany(ctx, docs)
	metrics.MongoOperationDuration.WithLabelValues("insert_many", database.CollectionRestaurant).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert_many", database.CollectionRestaurant).Inc()
		return err
	}
	return nil
}
