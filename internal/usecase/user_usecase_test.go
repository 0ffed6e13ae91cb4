package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/usecase"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

func fixtureUser() *entity.User {
	return &entity.User{
		ID:        primitive.NewObjectID(),
		Avatar:    entity.DefaultAvatar,
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "hashed:secret123",
		Role:      entity.RoleUser,
		Tokens:    []string{"live_token"},
		Eventmark: []primitive.ObjectID{},
	}
}

func newUserUC(userRepo *mockUserRepo, eventRepo *mockEventRepo, issuer *mockIssuer) usecasecontract.IUserUseCase {
	return usecase.NewUserUseCase(userRepo, eventRepo, mockHasher{}, issuer, passValidator{}, noopLogger{})
}

func TestRegister(t *testing.T) {
	userRepo := &mockUserRepo{}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	user, token, err := uc.Register(context.Background(), "newuser", "new@example.com", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.DefaultAvatar, user.Avatar)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "hashed:secret123", user.Password)
	require.NotNil(t, userRepo.Created)
	assert.Equal(t, []string{token}, userRepo.Pushed)
	assert.Contains(t, user.Tokens, token)
}

func TestRegister_PasswordLength(t *testing.T) {
	userRepo := &mockUserRepo{}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	_, _, err := uc.Register(context.Background(), "newuser", "new@example.com", "short")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, _, err = uc.Register(context.Background(), "newuser", "new@example.com", "123456789012345678901")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	assert.Nil(t, userRepo.Created)
}

func TestRegister_Conflict(t *testing.T) {
	userRepo := &mockUserRepo{Conflict: true}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	_, _, err := uc.Register(context.Background(), "taken", "taken@example.com", "secret123")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	userRepo := &mockUserRepo{User: fixtureUser()}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	user, token, err := uc.Login(context.Background(), "test@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, []string{token}, userRepo.Pushed)
}

// Login must not reveal whether the email or the password was wrong.
func TestLogin_FlattensFailures(t *testing.T) {
	userRepo := &mockUserRepo{Missing: true}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	_, _, err := uc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	assert.Equal(t, "incorrect email or password", apperr.MessageOf(err))

	userRepo = &mockUserRepo{User: fixtureUser()}
	uc = newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	_, _, err = uc.Login(context.Background(), "test@example.com", "wrongpass")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	assert.Equal(t, "incorrect email or password", apperr.MessageOf(err))
	assert.Empty(t, userRepo.Pushed)
}

func TestAuthenticate(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	issuer := &mockIssuer{UserID: user.ID.Hex()}
	uc := newUserUC(userRepo, &mockEventRepo{}, issuer)

	got, err := uc.Authenticate(context.Background(), "live_token", false)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticate_Expired(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	issuer := &mockIssuer{UserID: user.ID.Hex(), Expired: true}
	uc := newUserUC(userRepo, &mockEventRepo{}, issuer)

	_, err := uc.Authenticate(context.Background(), "live_token", false)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	assert.Equal(t, "login expired", apperr.MessageOf(err))

	// Renewal routes tolerate expiry as long as the token is still stored.
	got, err := uc.Authenticate(context.Background(), "live_token", true)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	issuer := &mockIssuer{UserID: user.ID.Hex()}
	uc := newUserUC(userRepo, &mockEventRepo{}, issuer)

	_, err := uc.Authenticate(context.Background(), "not_in_store", false)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestExtend(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{UserID: user.ID.Hex()})

	newToken, err := uc.Extend(context.Background(), user, "live_token")

	require.NoError(t, err)
	assert.NotEqual(t, "live_token", newToken)
	assert.Equal(t, "live_token", userRepo.ReplacedOld)
	assert.Equal(t, newToken, userRepo.ReplacedNew)
	assert.Contains(t, user.Tokens, newToken)
	assert.NotContains(t, user.Tokens, "live_token")
}

func TestExtend_UnknownToken(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{UserID: user.ID.Hex()})

	_, err := uc.Extend(context.Background(), user, "stale_token")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestLogout(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{UserID: user.ID.Hex()})

	require.NoError(t, uc.Logout(context.Background(), user.ID, "live_token"))
	assert.Equal(t, []string{"live_token"}, userRepo.Pulled)
}

func TestUpdateProfile_FieldAllowlist(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	got, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"username": "renamed",
		"role":     entity.RoleAdmin,
		"tokens":   []string{"injected"},
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Username)
	assert.Equal(t, map[string]interface{}{"username": "renamed"}, userRepo.LastUpdates)
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	user := fixtureUser()
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{}, &mockIssuer{})

	got, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"password": "newsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:newsecret", got.Password)
	assert.Equal(t, "hashed:newsecret", userRepo.LastUpdates["password"])

	_, err = uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"password": "tiny",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateProfile_NothingToUpdate(t *testing.T) {
	user := fixtureUser()
	uc := newUserUC(&mockUserRepo{User: user}, &mockEventRepo{}, &mockIssuer{})

	_, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"role": entity.RoleAdmin,
	})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestToggleFavorite(t *testing.T) {
	user := fixtureUser()
	event := &entity.Event{ID: primitive.NewObjectID()}
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{Event: event}, &mockIssuer{})

	favored, err := uc.ToggleFavorite(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.True(t, favored)
	assert.Contains(t, user.Eventmark, event.ID)

	favored, err = uc.ToggleFavorite(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.False(t, favored)
	assert.NotContains(t, user.Eventmark, event.ID)
}

func TestToggleFavorite_MissingEvent(t *testing.T) {
	user := fixtureUser()
	uc := newUserUC(&mockUserRepo{User: user}, &mockEventRepo{Missing: true}, &mockIssuer{})

	_, err := uc.ToggleFavorite(context.Background(), user.ID, primitive.NewObjectID())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, user.Eventmark)
}

func TestRemoveFavorite_Idempotent(t *testing.T) {
	user := fixtureUser()
	event := &entity.Event{ID: primitive.NewObjectID()}
	user.Eventmark = []primitive.ObjectID{event.ID}
	userRepo := &mockUserRepo{User: user}
	uc := newUserUC(userRepo, &mockEventRepo{Event: event}, &mockIssuer{})

	require.NoError(t, uc.RemoveFavorite(context.Background(), user.ID, event.ID))
	assert.Empty(t, user.Eventmark)

	require.NoError(t, uc.RemoveFavorite(context.Background(), user.ID, event.ID))
	assert.Empty(t, user.Eventmark)
}

func TestFavoriteEvents(t *testing.T) {
	user := fixtureUser()
	event := &entity.Event{ID: primitive.NewObjectID(), Title: "社區二手市集"}
	user.Eventmark = []primitive.ObjectID{event.ID}
	uc := newUserUC(&mockUserRepo{User: user}, &mockEventRepo{Event: event}, &mockIssuer{})

	events, err := uc.FavoriteEvents(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "社區二手市集", events[0].Title)
}
