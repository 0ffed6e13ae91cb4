package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type IEventRepository interface {
	// Create inserts the event and appends its id to the owner's events list
	// in a single transaction.
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Event, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Event, error)
	// List returns a page of events plus the filter-aware total. A non-nil
	// owner restricts results to that user's posts.
	List(ctx context.Context, opts ListOptions, owner *primitive.ObjectID) ([]entity.Event, int64, error)
	Replace(ctx context.Context, id primitive.ObjectID, event *entity.Event) error
	// Delete removes the event and pulls its id from the owner's events list
	// and from every user's favorites, transactionally.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
