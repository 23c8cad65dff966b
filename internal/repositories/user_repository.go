package repositories

import (
	"context"
	"time"

	"restaurant-app-api/internal/models"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	collection, err := r.store.Collection(database.CollectionUser)
	if err != nil {
		return nil, err
	}

	var user models.User
	start := time.Now()
	err = collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollectionUser).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollectionUser).Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	collection, err := r.store.Collection(database.CollectionUser)
	if err != nil {
		return nil, err
	}

	var user models.User
	start := time.Now()
	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollectionUser).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollectionUser).Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	collection, err := r.store.Collection(database.CollectionUser)
	if err != nil {
		return err
	}

	start := time.Now()
	_, err = collection.InsertOne(ctx, user)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollectionUser).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollectionUser).Inc()
		return err
	}
	return nil
}

func (r *userRepository) Touch(ctx context.Context, id primitive.ObjectID, lastLogin string) error {
	collection, err := r.store.Collection(database.CollectionUser)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"is_verified": false,
		"last_login":  lastLogin,
		"updated_at":  time.Now().UTC(),
	}}
	start := time.Now()
	_, err = collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.CollectionUser).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.CollectionUser).Inc()
		return err
	}
	return nil
}

func (r *userRepository) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	collection, err := r.store.Collection(database.CollectionUser)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"is_verified": true,
		"updated_at":  time.Now().UTC(),
	}}
	start := time.Now()
	_, err = collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.CollectionUser).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.CollectionUser).Inc()
		return err
	}
	return nil
}
