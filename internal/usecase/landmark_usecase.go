package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type landmarkUseCase struct {
	landmarkRepo contract.ILandmarkRepository
	cache        contract.ILandmarkCache
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

// NewLandmarkUseCase wires the landmark operations. cache may be nil, in
// which case every listing goes straight to the database.
func NewLandmarkUseCase(
	landmarkRepo contract.ILandmarkRepository,
	cache contract.ILandmarkCache,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) usecasecontract.ILandmarkUseCase {
	return &landmarkUseCase{landmarkRepo: landmarkRepo, cache: cache, validator: validator, logger: logger}
}

func listCacheKey(opts contract.ListOptions) string {
	return fmt.Sprintf("search=%s&sortBy=%s&sortOrder=%s", opts.Search, opts.SortBy, opts.SortOrder)
}

func (uc *landmarkUseCase) Create(ctx context.Context, landmark *entity.Landmark) (*entity.Landmark, error) {
	if err := uc.validator.Struct(landmark); err != nil {
		return nil, err
	}
	if err := uc.landmarkRepo.Create(ctx, landmark); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return landmark, nil
}

func (uc *landmarkUseCase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Landmark, error) {
	return uc.landmarkRepo.GetByID(ctx, id)
}

// List serves the public map listing from cache when possible. Owner-scoped
// listings bypass the cache; they are per-user and cheap.
func (uc *landmarkUseCase) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Landmark, int64, error) {
	if owner != nil || uc.cache == nil {
		return uc.landmarkRepo.List(ctx, opts, owner)
	}

	key := listCacheKey(opts)
	if landmarks, total, ok := uc.cache.Get(ctx, key); ok {
		return landmarks, total, nil
	}
	landmarks, total, err := uc.landmarkRepo.List(ctx, opts, nil)
	if err != nil {
		return nil, 0, err
	}
	uc.cache.Set(ctx, key, landmarks, total)
	return landmarks, total, nil
}

func (uc *landmarkUseCase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Landmark, error) {
	landmark, err := uc.landmarkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canModify(landmark.UserID, actor); err != nil {
		return nil, err
	}

	if v, ok := updates["name"].(string); ok {
		landmark.Name = v
	}
	if v, ok := updates["address"].(string); ok {
		landmark.Address = v
	}
	if v, ok := updates["tel"].(string); ok {
		landmark.Tel = v
	}
	if v, ok := updates["cl"].(string); ok {
		landmark.CL = v
	}
	if v, ok := updates["lat"].(float64); ok {
		landmark.Lat = &v
	}
	if v, ok := updates["lng"].(float64); ok {
		landmark.Lng = &v
	}
	if v, ok := updates["categories"].([]string); ok {
		landmark.Categories = v
	}
	if v, ok := updates["description"].(string); ok {
		landmark.Description = v
	}

	if err := uc.validator.Struct(landmark); err != nil {
		return nil, err
	}
	if err := uc.landmarkRepo.Replace(ctx, id, landmark); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return landmark, nil
}

func (uc *landmarkUseCase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	landmark, err := uc.landmarkRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canModify(landmark.UserID, actor); err != nil {
		return err
	}
	if err := uc.landmarkRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *landmarkUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}
