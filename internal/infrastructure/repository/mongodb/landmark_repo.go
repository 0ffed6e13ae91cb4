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

// landmarkSearchFields are the fields landmark search matches on.
var landmarkSearchFields = []string{"name", "tel", "categories", "description"}

type MongoLandmarkRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	users      *mongo.Collection
}

var _ contract.ILandmarkRepository = (*MongoLandmarkRepository)(nil)

func NewMongoLandmarkRepository(client *mongo.Client, db *mongo.Database) *MongoLandmarkRepository {
	return &MongoLandmarkRepository{
		client:     client,
		collection: db.Collection(LandmarksCollection),
		users:      db.Collection(UsersCollection),
	}
}

func (r *MongoLandmarkRepository) Create(ctx context.Context, landmark *entity.Landmark) error {
	now := time.Now()
	landmark.ID = primitive.NewObjectID()
	landmark.CreatedAt = now
	landmark.UpdatedAt = now

	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.collection.InsertOne(sc, landmark); err != nil {
			return nil, err
		}
		res, err := r.users.UpdateOne(sc,
			bson.M{"_id": landmark.UserID},
			bson.M{"$push": bson.M{"landmark": landmark.ID}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.NotFound("user not found")
		}
		return nil, nil
	})
}

func (r *MongoLandmarkRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Landmark, error) {
	var landmark entity.Landmark
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&landmark)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("landmark not found")
		}
		return nil, err
	}
	return &landmark, nil
}

// List returns the whole filtered set. The map view always renders every
// landmark, so there is no pagination here.
func (r *MongoLandmarkRepository) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Landmark, int64, error) {
	var and []bson.M
	if owner != nil {
		and = append(and, bson.M{"user": *owner})
	}
	filter := BuildListFilter(opts.Search, landmarkSearchFields, and...)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, SortOnly(opts))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	landmarks := []entity.Landmark{}
	if err := cursor.All(ctx, &landmarks); err != nil {
		return nil, 0, err
	}
	return landmarks, total, nil
}

func (r *MongoLandmarkRepository) Replace(ctx context.Context, id primitive.ObjectID, landmark *entity.Landmark) error {
	landmark.ID = id
	landmark.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, landmark)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("landmark not found")
	}
	return nil
}

func (r *MongoLandmarkRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		var landmark entity.Landmark
		if err := r.collection.FindOneAndDelete(sc, bson.M{"_id": id}).Decode(&landmark); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, apperr.NotFound("landmark not found")
			}
			return nil, err
		}
		if _, err := r.users.UpdateOne(sc,
			bson.M{"_id": landmark.UserID},
			bson.M{"$pull": bson.M{"landmark": id}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
}
