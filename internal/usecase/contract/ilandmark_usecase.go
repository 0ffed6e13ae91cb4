package usecasecontract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// ILandmarkUseCase defines the interface for landmark operations.
type ILandmarkUseCase interface {
	Create(ctx context.Context, landmark *entity.Landmark) (*entity.Landmark, error)
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Landmark, error)
	List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Landmark, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Landmark, error)
	Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error
}
