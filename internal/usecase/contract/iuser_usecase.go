package usecasecontract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// IUserUseCase defines the interface for account and session operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Authenticate resolves a session token to its user. With allowExpired
	// the signature still has to verify and the token still has to be live
	// on the user document, but a past expiry date is tolerated.
	Authenticate(ctx context.Context, token string, allowExpired bool) (*entity.User, error)
	// Extend replaces the presented token with a freshly issued one.
	Extend(ctx context.Context, user *entity.User, oldToken string) (string, error)
	Logout(ctx context.Context, userID primitive.ObjectID, token string) error
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, updates map[string]interface{}) (*entity.User, error)
	List(ctx context.Context, opts contract.ListOptions) ([]entity.User, int64, error)
	// ToggleFavorite flips the favored state of an event and returns the new
	// state.
	ToggleFavorite(ctx context.Context, userID, eventID primitive.ObjectID) (bool, error)
	RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error
	FavoriteEvents(ctx context.Context, userID primitive.ObjectID) ([]entity.Event, error)
}
