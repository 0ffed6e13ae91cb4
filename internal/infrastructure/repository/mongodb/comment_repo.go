package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type MongoCommentRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	users      *mongo.Collection
	materials  *mongo.Collection
}

var _ contract.ICommentRepository = (*MongoCommentRepository)(nil)

func NewMongoCommentRepository(client *mongo.Client, db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{
		client:     client,
		collection: db.Collection(CommentsCollection),
		users:      db.Collection(UsersCollection),
		materials:  db.Collection(MaterialsCollection),
	}
}

// Create inserts the comment and registers it on both the material and the
// author, all in one transaction.
func (r *MongoCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.collection.InsertOne(sc, comment); err != nil {
			return nil, err
		}
		res, err := r.materials.UpdateOne(sc,
			bson.M{"_id": comment.MaterialID},
			bson.M{"$push": bson.M{"comment": comment.ID}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.NotFound("material not found")
		}
		res, err = r.users.UpdateOne(sc,
			bson.M{"_id": comment.UserID},
			bson.M{"$push": bson.M{"comment": comment.ID}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.NotFound("user not found")
		}
		return nil, nil
	})
}

func (r *MongoCommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

// ListByMaterial joins each comment with its author's username and avatar
// and the material's name and image, oldest first.
func (r *MongoCommentRepository) ListByMaterial(ctx context.Context, materialID primitive.ObjectID) ([]entity.CommentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"material": materialID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "user_info",
		}}},
		{{Key: "$unwind", Value: "$user_info"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         MaterialsCollection,
			"localField":   "material",
			"foreignField": "_id",
			"as":           "material_info",
		}}},
		{{Key: "$unwind", Value: "$material_info"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []entity.CommentDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *MongoCommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("comment not found")
	}
	return nil
}

// Delete removes the comment and both back-references.
func (r *MongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		var comment entity.Comment
		if err := r.collection.FindOneAndDelete(sc, bson.M{"_id": id}).Decode(&comment); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, apperr.NotFound("comment not found")
			}
			return nil, err
		}
		if _, err := r.materials.UpdateOne(sc,
			bson.M{"_id": comment.MaterialID},
			bson.M{"$pull": bson.M{"comment": id}}); err != nil {
			return nil, err
		}
		if _, err := r.users.UpdateOne(sc,
			bson.M{"_id": comment.UserID},
			bson.M{"$pull": bson.M{"comment": id}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
}
