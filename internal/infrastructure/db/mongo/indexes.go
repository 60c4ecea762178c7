package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints the repositories rely on:
// email unique within each account collection, slot name unique for site
// images. Safe to call on every boot.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	for _, coll := range []string{usersCollection, adminsCollection} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("ensure email index on %s: %w", coll, err)
		}
	}

	_, err := db.Collection(siteImagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("ensure name index on %s: %w", siteImagesCollection, err)
	}

	return nil
}
