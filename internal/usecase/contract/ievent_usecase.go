package usecasecontract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// IEventUseCase defines the interface for event post operations.
type IEventUseCase interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Event, error)
	List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Event, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error
}
