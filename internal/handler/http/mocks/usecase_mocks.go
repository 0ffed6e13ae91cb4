package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

// MockUserUsecase is a hand mock of IUserUseCase driven by failure switches.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldConflictRegister   bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldExpireAuthenticate bool
	ShouldFailExtend         bool
	ShouldFailLogout         bool
	ShouldFailUpdateProfile  bool
	ShouldFailList           bool
	FavoriteEventMissing     bool

	// Return values
	MockUser      entity.User
	MockToken     string
	MockFavorites []entity.Event
	FavoriteState bool

	// Call records
	ToggleCalls   int
	RemoveCalls   int
	LastUpdates   map[string]interface{}
	AuthCallPaths []bool
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       primitive.NewObjectID(),
			Avatar:   entity.DefaultAvatar,
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.RoleUser,
		},
		MockToken: "mock_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	if m.ShouldConflictRegister {
		return nil, "", apperr.Conflict("username or email already taken")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", apperr.Auth("incorrect email or password")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, token string, allowExpired bool) (*entity.User, error) {
	m.AuthCallPaths = append(m.AuthCallPaths, allowExpired)
	if m.ShouldFailAuthenticate {
		return nil, apperr.Auth("invalid token")
	}
	if m.ShouldExpireAuthenticate && !allowExpired {
		return nil, apperr.Auth("login expired")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Extend(ctx context.Context, user *entity.User, oldToken string) (string, error) {
	if m.ShouldFailExtend {
		return "", apperr.Auth("invalid token")
	}
	return "extended_" + m.MockToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, userID primitive.ObjectID, token string) error {
	if m.ShouldFailLogout {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, apperr.Validation("invalid value for field \"username\"")
	}
	m.LastUpdates = updates
	return &m.MockUser, nil
}

func (m *MockUserUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.User, int64, error) {
	if m.ShouldFailList {
		return nil, 0, apperr.Unknown(nil)
	}
	return []entity.User{m.MockUser}, 1, nil
}

func (m *MockUserUsecase) ToggleFavorite(ctx context.Context, userID, eventID primitive.ObjectID) (bool, error) {
	if m.FavoriteEventMissing {
		return false, apperr.NotFound("event not found")
	}
	m.ToggleCalls++
	m.FavoriteState = !m.FavoriteState
	return m.FavoriteState, nil
}

func (m *MockUserUsecase) RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	m.RemoveCalls++
	m.FavoriteState = false
	return nil
}

func (m *MockUserUsecase) FavoriteEvents(ctx context.Context, userID primitive.ObjectID) ([]entity.Event, error) {
	return m.MockFavorites, nil
}

// MockEventUsecase is a hand mock of IEventUseCase.
type MockEventUsecase struct {
	ShouldFailCreate bool
	ShouldNotFind    bool
	ShouldForbid     bool

	MockEvent  entity.Event
	LastOwner  *primitive.ObjectID
	LastOpts   contract.ListOptions
	DeleteCall int
}

var _ usecasecontract.IEventUseCase = (*MockEventUsecase)(nil)

func NewMockEventUsecase() *MockEventUsecase {
	return &MockEventUsecase{
		MockEvent: entity.Event{
			ID:          primitive.NewObjectID(),
			Image:       "https://example.com/event.jpg",
			Title:       "社區二手市集",
			Date:        "2026-09-01",
			Address:     "台北市中正區",
			Category:    []string{"其他"},
			Organizer:   "小草協會",
			Description: "歡迎參加",
			UserID:      primitive.NewObjectID(),
		},
	}
}

func (m *MockEventUsecase) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if m.ShouldFailCreate {
		return nil, apperr.Validation("invalid value for field \"title\"")
	}
	return event, nil
}

func (m *MockEventUsecase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Event, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("event not found")
	}
	return &m.MockEvent, nil
}

func (m *MockEventUsecase) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Event, int64, error) {
	m.LastOpts = opts
	m.LastOwner = owner
	return []entity.Event{m.MockEvent}, 1, nil
}

func (m *MockEventUsecase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Event, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("event not found")
	}
	if m.ShouldForbid {
		return nil, apperr.Forbidden("not the owner of this resource")
	}
	return &m.MockEvent, nil
}

func (m *MockEventUsecase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	if m.ShouldNotFind {
		return apperr.NotFound("event not found")
	}
	if m.ShouldForbid {
		return apperr.Forbidden("not the owner of this resource")
	}
	m.DeleteCall++
	return nil
}

// MockMaterialUsecase is a hand mock of IMaterialUseCase.
type MockMaterialUsecase struct {
	ShouldFailCreate bool
	ShouldNotFind    bool
	ShouldForbid     bool

	MockMaterial entity.Material
	LastType     string
	LastOwner    *primitive.ObjectID
	LastOpts     contract.ListOptions
	Donations    []entity.Donation
}

var _ usecasecontract.IMaterialUseCase = (*MockMaterialUsecase)(nil)

func NewMockMaterialUsecase() *MockMaterialUsecase {
	return &MockMaterialUsecase{
		MockMaterial: entity.Material{
			ID:          primitive.NewObjectID(),
			Image:       "https://example.com/material.jpg",
			Name:        "冬季外套",
			Quantity:    3,
			Category:    "服飾配件",
			Description: "九成新",
			Organizer:   "小草協會",
			Type:        entity.MaterialTypeShare,
			UserID:      primitive.NewObjectID(),
		},
	}
}

func (m *MockMaterialUsecase) Create(ctx context.Context, material *entity.Material) (*entity.Material, error) {
	if m.ShouldFailCreate {
		return nil, apperr.Validation("invalid value for field \"name\"")
	}
	return material, nil
}

func (m *MockMaterialUsecase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Material, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("material not found")
	}
	return &m.MockMaterial, nil
}

func (m *MockMaterialUsecase) List(ctx context.Context, opts contract.ListOptions, materialType string, owner *primitive.ObjectID) ([]entity.Material, int64, error) {
	m.LastOpts = opts
	m.LastType = materialType
	m.LastOwner = owner
	return []entity.Material{m.MockMaterial}, 1, nil
}

func (m *MockMaterialUsecase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Material, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("material not found")
	}
	if m.ShouldForbid {
		return nil, apperr.Forbidden("not the owner of this resource")
	}
	return &m.MockMaterial, nil
}

func (m *MockMaterialUsecase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	if m.ShouldNotFind {
		return apperr.NotFound("material not found")
	}
	if m.ShouldForbid {
		return apperr.Forbidden("not the owner of this resource")
	}
	return nil
}

func (m *MockMaterialUsecase) Donate(ctx context.Context, id primitive.ObjectID, donation entity.Donation) (*entity.Material, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("material not found")
	}
	m.Donations = append(m.Donations, donation)
	m.MockMaterial.Donations = m.Donations
	return &m.MockMaterial, nil
}

// MockLandmarkUsecase is a hand mock of ILandmarkUseCase.
type MockLandmarkUsecase struct {
	ShouldNotFind bool
	ShouldForbid  bool

	MockLandmark entity.Landmark
	LastOwner    *primitive.ObjectID
}

var _ usecasecontract.ILandmarkUseCase = (*MockLandmarkUsecase)(nil)

func NewMockLandmarkUsecase() *MockLandmarkUsecase {
	lat, lng := 25.033, 121.565
	return &MockLandmarkUsecase{
		MockLandmark: entity.Landmark{
			ID:         primitive.NewObjectID(),
			Name:       "社福中心",
			Address:    "台北市信義區",
			Lat:        &lat,
			Lng:        &lng,
			Categories: []string{"社工"},
			UserID:     primitive.NewObjectID(),
		},
	}
}

func (m *MockLandmarkUsecase) Create(ctx context.Context, landmark *entity.Landmark) (*entity.Landmark, error) {
	return landmark, nil
}

func (m *MockLandmarkUsecase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Landmark, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("landmark not found")
	}
	return &m.MockLandmark, nil
}

func (m *MockLandmarkUsecase) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Landmark, int64, error) {
	m.LastOwner = owner
	return []entity.Landmark{m.MockLandmark}, 1, nil
}

func (m *MockLandmarkUsecase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Landmark, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("landmark not found")
	}
	if m.ShouldForbid {
		return nil, apperr.Forbidden("not the owner of this resource")
	}
	return &m.MockLandmark, nil
}

func (m *MockLandmarkUsecase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	if m.ShouldNotFind {
		return apperr.NotFound("landmark not found")
	}
	if m.ShouldForbid {
		return apperr.Forbidden("not the owner of this resource")
	}
	return nil
}

// MockCommentUsecase is a hand mock of ICommentUseCase.
type MockCommentUsecase struct {
	ShouldNotFind bool
	ShouldForbid  bool

	MockComment entity.Comment
	MockDetails []entity.CommentDetail
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{
		MockComment: entity.Comment{
			ID:         primitive.NewObjectID(),
			MaterialID: primitive.NewObjectID(),
			UserID:     primitive.NewObjectID(),
			Content:    "請問還有嗎？",
		},
	}
}

func (m *MockCommentUsecase) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("material not found")
	}
	return comment, nil
}

func (m *MockCommentUsecase) ListByMaterial(ctx context.Context, materialID primitive.ObjectID) ([]entity.CommentDetail, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("material not found")
	}
	return m.MockDetails, nil
}

func (m *MockCommentUsecase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, content string) (*entity.Comment, error) {
	if m.ShouldNotFind {
		return nil, apperr.NotFound("comment not found")
	}
	if m.ShouldForbid {
		return nil, apperr.Forbidden("not the owner of this resource")
	}
	m.MockComment.Content = content
	return &m.MockComment, nil
}

func (m *MockCommentUsecase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	if m.ShouldNotFind {
		return apperr.NotFound("comment not found")
	}
	if m.ShouldForbid {
		return apperr.Forbidden("not the owner of this resource")
	}
	return nil
}
