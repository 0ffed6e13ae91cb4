package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type ICommentRepository interface {
	// Create inserts the comment and appends its id to both the material's
	// and the author's comment lists in a single transaction.
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error)
	// ListByMaterial returns a material's comments joined with author and
	// material projections.
	ListByMaterial(ctx context.Context, materialID primitive.ObjectID) ([]entity.CommentDetail, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	// Delete removes the comment and pulls its id from the material's and
	// the author's comment lists, transactionally.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
