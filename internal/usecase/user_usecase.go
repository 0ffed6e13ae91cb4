package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type userUseCase struct {
	userRepo  contract.IUserRepository
	eventRepo contract.IEventRepository
	hasher    contract.IHasher
	issuer    TokenIssuer
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

func NewUserUseCase(
	userRepo contract.IUserRepository,
	eventRepo contract.IEventRepository,
	hasher contract.IHasher,
	issuer TokenIssuer,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) usecasecontract.IUserUseCase {
	return &userUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		hasher:    hasher,
		issuer:    issuer,
		validator: validator,
		logger:    logger,
	}
}

// validatePassword checks the plaintext length before hashing; the stored
// hash has a fixed length so the check cannot happen later.
func validatePassword(password string) error {
	if len(password) < 6 || len(password) > 20 {
		return apperr.Validation("password must be between 6 and 20 characters")
	}
	return nil
}

func (uc *userUseCase) Register(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}
	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Avatar:    entity.DefaultAvatar,
		Username:  username,
		Email:     email,
		Password:  hashed,
		Role:      entity.RoleUser,
		Tokens:    []string{},
		Events:    []primitive.ObjectID{},
		Eventmark: []primitive.ObjectID{},
		Landmark:  []primitive.ObjectID{},
		Materials: []primitive.ObjectID{},
		Comment:   []primitive.ObjectID{},
	}
	if err := uc.validator.Struct(user); err != nil {
		return nil, "", err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	uc.logger.Infof("registered user %s", user.ID.Hex())
	return user, token, nil
}

func (uc *userUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, "", apperr.Auth("incorrect email or password")
		}
		return nil, "", err
	}
	if err := uc.hasher.ComparePasswordHash(password, user.Password); err != nil {
		return nil, "", apperr.Auth("incorrect email or password")
	}

	token, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *userUseCase) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := uc.issuer.Sign(user.ID.Hex())
	if err != nil {
		return "", err
	}
	if err := uc.userRepo.PushToken(ctx, user.ID, token); err != nil {
		return "", err
	}
	user.Tokens = append(user.Tokens, token)
	return token, nil
}

func (uc *userUseCase) Authenticate(ctx context.Context, token string, allowExpired bool) (*entity.User, error) {
	userID, expired, err := uc.issuer.Parse(token)
	if err != nil {
		return nil, err
	}
	if expired && !allowExpired {
		return nil, apperr.Auth("login expired")
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Auth("invalid token")
	}
	return uc.userRepo.GetByIDAndToken(ctx, id, token)
}

func (uc *userUseCase) Extend(ctx context.Context, user *entity.User, oldToken string) (string, error) {
	newToken, err := uc.issuer.Sign(user.ID.Hex())
	if err != nil {
		return "", err
	}
	if err := uc.userRepo.ReplaceToken(ctx, user.ID, oldToken, newToken); err != nil {
		return "", err
	}
	return newToken, nil
}

func (uc *userUseCase) Logout(ctx context.Context, userID primitive.ObjectID, token string) error {
	return uc.userRepo.PullToken(ctx, userID, token)
}

// profileFields are the only document fields a profile edit may touch.
var profileFields = map[string]bool{
	"username": true,
	"email":    true,
	"avatar":   true,
	"password": true,
}

func (uc *userUseCase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, updates map[string]interface{}) (*entity.User, error) {
	filtered := map[string]interface{}{}
	for k, v := range updates {
		if profileFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.BadRequest("no updatable fields provided")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v, ok := filtered["username"].(string); ok {
		user.Username = v
	}
	if v, ok := filtered["email"].(string); ok {
		user.Email = v
	}
	if v, ok := filtered["avatar"].(string); ok {
		user.Avatar = v
	}
	if v, ok := filtered["password"].(string); ok {
		if err := validatePassword(v); err != nil {
			return nil, err
		}
		hashed, err := uc.hasher.HashPassword(v)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
		filtered["password"] = hashed
	}
	if err := uc.validator.Struct(user); err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateFields(ctx, userID, filtered); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) List(ctx context.Context, opts contract.ListOptions) ([]entity.User, int64, error) {
	return uc.userRepo.List(ctx, opts)
}

func (uc *userUseCase) ToggleFavorite(ctx context.Context, userID, eventID primitive.ObjectID) (bool, error) {
	if _, err := uc.eventRepo.GetByID(ctx, eventID); err != nil {
		return false, err
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	favored := !user.HasFavorite(eventID)
	if err := uc.userRepo.SetFavorite(ctx, userID, eventID, favored); err != nil {
		return false, err
	}
	return favored, nil
}

func (uc *userUseCase) RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	return uc.userRepo.SetFavorite(ctx, userID, eventID, false)
}

func (uc *userUseCase) FavoriteEvents(ctx context.Context, userID primitive.ObjectID) ([]entity.Event, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.eventRepo.GetByIDs(ctx, user.Eventmark)
}
