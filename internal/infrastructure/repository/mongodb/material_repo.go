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

// materialSearchFields are the fields material search matches on.
var materialSearchFields = []string{"name", "category"}

type MongoMaterialRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	users      *mongo.Collection
	comments   *mongo.Collection
}

var _ contract.IMaterialRepository = (*MongoMaterialRepository)(nil)

func NewMongoMaterialRepository(client *mongo.Client, db *mongo.Database) *MongoMaterialRepository {
	return &MongoMaterialRepository{
		client:     client,
		collection: db.Collection(MaterialsCollection),
		users:      db.Collection(UsersCollection),
		comments:   db.Collection(CommentsCollection),
	}
}

func (r *MongoMaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	now := time.Now()
	material.ID = primitive.NewObjectID()
	material.CreatedAt = now
	material.UpdatedAt = now
	if material.Donations == nil {
		material.Donations = []entity.Donation{}
	}
	if material.Comment == nil {
		material.Comment = []primitive.ObjectID{}
	}

	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.collection.InsertOne(sc, material); err != nil {
			return nil, err
		}
		res, err := r.users.UpdateOne(sc,
			bson.M{"_id": material.UserID},
			bson.M{"$push": bson.M{"materials": material.ID}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.NotFound("user not found")
		}
		return nil, nil
	})
}

func (r *MongoMaterialRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Material, error) {
	var material entity.Material
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&material)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("material not found")
		}
		return nil, err
	}
	return &material, nil
}

func (r *MongoMaterialRepository) List(ctx context.Context, opts contract.ListOptions, materialType string, owner *primitive.ObjectID) ([]entity.Material, int64, error) {
	var and []bson.M
	if materialType != "" {
		and = append(and, bson.M{"type": materialType})
	}
	if owner != nil {
		and = append(and, bson.M{"user": *owner})
	}
	filter := BuildListFilter(opts.Search, materialSearchFields, and...)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, FindOptions(opts))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	materials := []entity.Material{}
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, 0, err
	}
	return materials, total, nil
}

func (r *MongoMaterialRepository) Replace(ctx context.Context, id primitive.ObjectID, material *entity.Material) error {
	material.ID = id
	material.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, material)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("material not found")
	}
	return nil
}

// Delete removes the material, cascades its comments and cleans up every
// back-reference on the owner and on commenting users.
func (r *MongoMaterialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		var material entity.Material
		if err := r.collection.FindOneAndDelete(sc, bson.M{"_id": id}).Decode(&material); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, apperr.NotFound("material not found")
			}
			return nil, err
		}
		if _, err := r.users.UpdateOne(sc,
			bson.M{"_id": material.UserID},
			bson.M{"$pull": bson.M{"materials": id}}); err != nil {
			return nil, err
		}
		if len(material.Comment) > 0 {
			if _, err := r.comments.DeleteMany(sc, bson.M{"material": id}); err != nil {
				return nil, err
			}
			if _, err := r.users.UpdateMany(sc,
				bson.M{"comment": bson.M{"$in": material.Comment}},
				bson.M{"$pull": bson.M{"comment": bson.M{"$in": material.Comment}}}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
}

func (r *MongoMaterialRepository) AddDonation(ctx context.Context, id primitive.ObjectID, donation entity.Donation) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"donations": donation},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("material not found")
	}
	return nil
}
