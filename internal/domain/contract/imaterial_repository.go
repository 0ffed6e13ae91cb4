package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type IMaterialRepository interface {
	// Create inserts the material and appends its id to the owner's
	// materials list in a single transaction.
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Material, error)
	// List returns a page of materials plus the filter-aware total.
	// materialType narrows to "share" or "find" when non-empty; a non-nil
	// owner restricts results to that user's posts.
	List(ctx context.Context, opts ListOptions, materialType string, owner *primitive.ObjectID) ([]entity.Material, int64, error)
	Replace(ctx context.Context, id primitive.ObjectID, material *entity.Material) error
	// Delete removes the material, its comments and every back-reference,
	// transactionally.
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddDonation appends an embedded donation record.
	AddDonation(ctx context.Context, id primitive.ObjectID, donation entity.Donation) error
}
