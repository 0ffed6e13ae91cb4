package usecasecontract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// IMaterialUseCase defines the interface for material listing operations.
type IMaterialUseCase interface {
	Create(ctx context.Context, material *entity.Material) (*entity.Material, error)
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Material, error)
	List(ctx context.Context, opts contract.ListOptions, materialType string, owner *primitive.ObjectID) ([]entity.Material, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Material, error)
	Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error
	// Donate records a pledge against a listing; it never mutates the
	// listing's own quantity.
	Donate(ctx context.Context, id primitive.ObjectID, donation entity.Donation) (*entity.Material, error)
}
