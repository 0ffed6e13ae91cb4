package usecase_test

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// Hand mocks for the repository and infrastructure ports, driven by failure
// switches and recording calls for assertions.

type mockUserRepo struct {
	User     *entity.User
	Missing  bool
	Conflict bool

	Created     *entity.User
	Pushed      []string
	ReplacedOld string
	ReplacedNew string
	Pulled      []string
	LastUpdates map[string]interface{}
}

var _ contract.IUserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.Conflict {
		return apperr.Conflict("username or email already taken")
	}
	user.ID = primitive.NewObjectID()
	m.Created = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	if m.Missing {
		return nil, apperr.NotFound("user not found")
	}
	return m.User, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.Missing {
		return nil, apperr.NotFound("user not found")
	}
	return m.User, nil
}

func (m *mockUserRepo) GetByIDAndToken(ctx context.Context, id primitive.ObjectID, token string) (*entity.User, error) {
	if m.Missing {
		return nil, apperr.Auth("invalid token")
	}
	for _, t := range m.User.Tokens {
		if t == token {
			return m.User, nil
		}
	}
	return nil, apperr.Auth("invalid token")
}

func (m *mockUserRepo) List(ctx context.Context, opts contract.ListOptions) ([]entity.User, int64, error) {
	return []entity.User{*m.User}, 1, nil
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	m.LastUpdates = updates
	return nil
}

func (m *mockUserRepo) PushToken(ctx context.Context, id primitive.ObjectID, token string) error {
	m.Pushed = append(m.Pushed, token)
	return nil
}

func (m *mockUserRepo) ReplaceToken(ctx context.Context, id primitive.ObjectID, oldToken, newToken string) error {
	for i, t := range m.User.Tokens {
		if t == oldToken {
			m.User.Tokens[i] = newToken
			m.ReplacedOld, m.ReplacedNew = oldToken, newToken
			return nil
		}
	}
	return apperr.Auth("invalid token")
}

func (m *mockUserRepo) PullToken(ctx context.Context, id primitive.ObjectID, token string) error {
	m.Pulled = append(m.Pulled, token)
	return nil
}

func (m *mockUserRepo) SetFavorite(ctx context.Context, id, eventID primitive.ObjectID, favored bool) error {
	marks := m.User.Eventmark[:0]
	for _, e := range m.User.Eventmark {
		if e != eventID {
			marks = append(marks, e)
		}
	}
	if favored {
		marks = append(marks, eventID)
	}
	m.User.Eventmark = marks
	return nil
}

type mockEventRepo struct {
	Event   *entity.Event
	Missing bool

	Deleted int
}

var _ contract.IEventRepository = (*mockEventRepo)(nil)

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	event.ID = primitive.NewObjectID()
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Event, error) {
	if m.Missing {
		return nil, apperr.NotFound("event not found")
	}
	return m.Event, nil
}

func (m *mockEventRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Event, error) {
	events := make([]entity.Event, 0, len(ids))
	for range ids {
		events = append(events, *m.Event)
	}
	return events, nil
}

func (m *mockEventRepo) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Event, int64, error) {
	return []entity.Event{*m.Event}, 1, nil
}

func (m *mockEventRepo) Replace(ctx context.Context, id primitive.ObjectID, event *entity.Event) error {
	m.Event = event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.Deleted++
	return nil
}

type mockMaterialRepo struct {
	Material *entity.Material
	Missing  bool

	Donations []entity.Donation
	Deleted   int
}

var _ contract.IMaterialRepository = (*mockMaterialRepo)(nil)

func (m *mockMaterialRepo) Create(ctx context.Context, material *entity.Material) error {
	material.ID = primitive.NewObjectID()
	return nil
}

func (m *mockMaterialRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Material, error) {
	if m.Missing {
		return nil, apperr.NotFound("material not found")
	}
	return m.Material, nil
}

func (m *mockMaterialRepo) List(ctx context.Context, opts contract.ListOptions, materialType string, owner *primitive.ObjectID) ([]entity.Material, int64, error) {
	return []entity.Material{*m.Material}, 1, nil
}

func (m *mockMaterialRepo) Replace(ctx context.Context, id primitive.ObjectID, material *entity.Material) error {
	m.Material = material
	return nil
}

func (m *mockMaterialRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.Deleted++
	return nil
}

func (m *mockMaterialRepo) AddDonation(ctx context.Context, id primitive.ObjectID, donation entity.Donation) error {
	if m.Missing {
		return apperr.NotFound("material not found")
	}
	m.Donations = append(m.Donations, donation)
	m.Material.Donations = m.Donations
	return nil
}

type mockLandmarkRepo struct {
	Landmark *entity.Landmark
	Missing  bool

	ListCalls int
	Deleted   int
}

var _ contract.ILandmarkRepository = (*mockLandmarkRepo)(nil)

func (m *mockLandmarkRepo) Create(ctx context.Context, landmark *entity.Landmark) error {
	landmark.ID = primitive.NewObjectID()
	return nil
}

func (m *mockLandmarkRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Landmark, error) {
	if m.Missing {
		return nil, apperr.NotFound("landmark not found")
	}
	return m.Landmark, nil
}

func (m *mockLandmarkRepo) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Landmark, int64, error) {
	m.ListCalls++
	return []entity.Landmark{*m.Landmark}, 1, nil
}

func (m *mockLandmarkRepo) Replace(ctx context.Context, id primitive.ObjectID, landmark *entity.Landmark) error {
	m.Landmark = landmark
	return nil
}

func (m *mockLandmarkRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.Deleted++
	return nil
}

type cacheEntry struct {
	landmarks []entity.Landmark
	total     int64
}

type mockLandmarkCache struct {
	Entries       map[string]cacheEntry
	Invalidations int
}

var _ contract.ILandmarkCache = (*mockLandmarkCache)(nil)

func newMockLandmarkCache() *mockLandmarkCache {
	return &mockLandmarkCache{Entries: map[string]cacheEntry{}}
}

func (m *mockLandmarkCache) Get(ctx context.Context, key string) ([]entity.Landmark, int64, bool) {
	e, ok := m.Entries[key]
	return e.landmarks, e.total, ok
}

func (m *mockLandmarkCache) Set(ctx context.Context, key string, landmarks []entity.Landmark, total int64) {
	m.Entries[key] = cacheEntry{landmarks: landmarks, total: total}
}

func (m *mockLandmarkCache) Invalidate(ctx context.Context) {
	m.Entries = map[string]cacheEntry{}
	m.Invalidations++
}

type mockHasher struct{}

var _ contract.IHasher = (*mockHasher)(nil)

func (mockHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return apperr.Auth("password verification failed")
	}
	return nil
}

type mockIssuer struct {
	UserID  string
	Expired bool
	counter int
}

func (m *mockIssuer) Sign(userID string) (string, error) {
	m.counter++
	return fmt.Sprintf("token_%d_%s", m.counter, userID), nil
}

func (m *mockIssuer) Parse(token string) (string, bool, error) {
	if m.UserID == "" {
		return "", false, apperr.Auth("invalid token")
	}
	return m.UserID, m.Expired, nil
}

type passValidator struct{}

func (passValidator) Struct(s interface{}) error { return nil }

type failValidator struct{}

func (failValidator) Struct(s interface{}) error {
	return apperr.Validation(`invalid value for field "name"`)
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (noopLogger) Fatalf(format string, args ...interface{}) {}
