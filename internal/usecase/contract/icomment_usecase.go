package usecasecontract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// ICommentUseCase defines the interface for material comment operations.
type ICommentUseCase interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	ListByMaterial(ctx context.Context, materialID primitive.ObjectID) ([]entity.CommentDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error
}
