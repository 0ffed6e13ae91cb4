package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type IUserRepository interface {
	// Create inserts a new user; duplicate username/email yields a conflict.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDAndToken resolves a user only when the token is still in the
	// user's live-token list.
	GetByIDAndToken(ctx context.Context, id primitive.ObjectID, token string) (*entity.User, error)
	List(ctx context.Context, opts ListOptions) ([]entity.User, int64, error)
	// UpdateFields applies a partial-field merge to the user document.
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	PushToken(ctx context.Context, id primitive.ObjectID, token string) error
	// ReplaceToken swaps oldToken for newToken in place, invalidating the old one.
	ReplaceToken(ctx context.Context, id primitive.ObjectID, oldToken, newToken string) error
	PullToken(ctx context.Context, id primitive.ObjectID, token string) error
	// SetFavorite adds or removes an event id from the user's favorites list.
	SetFavorite(ctx context.Context, id, eventID primitive.ObjectID, favored bool) error
}
