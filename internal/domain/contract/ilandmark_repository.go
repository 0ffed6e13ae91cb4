package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type ILandmarkRepository interface {
	// Create inserts the landmark and appends its id to the owner's landmark
	// list in a single transaction.
	Create(ctx context.Context, landmark *entity.Landmark) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Landmark, error)
	// List returns the full filtered, sorted set. Landmark listings are not
	// paginated; only Search/SortBy/SortOrder of opts apply.
	List(ctx context.Context, opts ListOptions, owner *primitive.ObjectID) ([]entity.Landmark, int64, error)
	Replace(ctx context.Context, id primitive.ObjectID, landmark *entity.Landmark) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
