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

// eventSearchFields are the fields event search matches on.
var eventSearchFields = []string{"title", "category"}

type MongoEventRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	users      *mongo.Collection
}

var _ contract.IEventRepository = (*MongoEventRepository)(nil)

func NewMongoEventRepository(client *mongo.Client, db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		client:     client,
		collection: db.Collection(EventsCollection),
		users:      db.Collection(UsersCollection),
	}
}

func (r *MongoEventRepository) Create(ctx context.Context, event *entity.Event) error {
	now := time.Now()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now

	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.collection.InsertOne(sc, event); err != nil {
			return nil, err
		}
		res, err := r.users.UpdateOne(sc,
			bson.M{"_id": event.UserID},
			bson.M{"$push": bson.M{"events": event.ID}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.NotFound("user not found")
		}
		return nil, nil
	})
}

func (r *MongoEventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Event, error) {
	var event entity.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("event not found")
		}
		return nil, err
	}
	return &event, nil
}

func (r *MongoEventRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Event, error) {
	if len(ids) == 0 {
		return []entity.Event{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *MongoEventRepository) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Event, int64, error) {
	var and []bson.M
	if owner != nil {
		and = append(and, bson.M{"user": *owner})
	}
	filter := BuildListFilter(opts.Search, eventSearchFields, and...)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, FindOptions(opts))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	events := []entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *MongoEventRepository) Replace(ctx context.Context, id primitive.ObjectID, event *entity.Event) error {
	event.ID = id
	event.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, event)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("event not found")
	}
	return nil
}

// Delete removes the event together with the owner's back-reference and any
// favorite entries pointing at it.
func (r *MongoEventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return withTransaction(ctx, r.client, func(sc mongo.SessionContext) (interface{}, error) {
		var event entity.Event
		if err := r.collection.FindOneAndDelete(sc, bson.M{"_id": id}).Decode(&event); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, apperr.NotFound("event not found")
			}
			return nil, err
		}
		if _, err := r.users.UpdateOne(sc,
			bson.M{"_id": event.UserID},
			bson.M{"$pull": bson.M{"events": id}}); err != nil {
			return nil, err
		}
		if _, err := r.users.UpdateMany(sc,
			bson.M{"eventmark": id},
			bson.M{"$pull": bson.M{"eventmark": id}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
}
