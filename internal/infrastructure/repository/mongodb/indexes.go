package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the repositories.
const (
	UsersCollection     = "users"
	EventsCollection    = "events"
	MaterialsCollection = "materials"
	LandmarksCollection = "landmarks"
	CommentsCollection  = "comments"
)

// EnsureIndexes creates the unique indexes that back username and email
// uniqueness. Registration relies on the duplicate-key error these produce
// instead of a read-then-write check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
