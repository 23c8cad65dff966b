package database

import (
	"context"

	"restaurant-app-api/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIndexes indexes the user collection for phone lookups and the
// product collection for restaurant_id filters. The phone index is
// deliberately non-unique: uniqueness is a convention of the auth flow, not
// a store-level constraint.
func (s *Store) CreateIndexes(ctx context.Context) error {
	users, err := s.Collection(CollectionUser)
	if err != nil {
		return err
	}
	_, err = users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}},
	})
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create user indexes: %v", err)
		return err
	}

	products, err := s.Collection(CollectionProduct)
	if err != nil {
		return err
	}
	_, err = products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}}},
	})
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create product indexes: %v", err)
		return err
	}

	return nil
}
