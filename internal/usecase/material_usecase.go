package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type materialUseCase struct {
	materialRepo contract.IMaterialRepository
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

func NewMaterialUseCase(
	materialRepo contract.IMaterialRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) usecasecontract.IMaterialUseCase {
	return &materialUseCase{materialRepo: materialRepo, validator: validator, logger: logger}
}

func (uc *materialUseCase) Create(ctx context.Context, material *entity.Material) (*entity.Material, error) {
	if err := uc.validator.Struct(material); err != nil {
		return nil, err
	}
	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (uc *materialUseCase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Material, error) {
	return uc.materialRepo.GetByID(ctx, id)
}

func (uc *materialUseCase) List(ctx context.Context, opts contract.ListOptions, materialType string, owner *primitive.ObjectID) ([]entity.Material, int64, error) {
	return uc.materialRepo.List(ctx, opts, materialType, owner)
}

// Update merges the provided fields into the stored material and replaces
// it. Owner, donations and comments are never touched here.
func (uc *materialUseCase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Material, error) {
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canModify(material.UserID, actor); err != nil {
		return nil, err
	}

	if v, ok := updates["image"].(string); ok {
		material.Image = v
	}
	if v, ok := updates["name"].(string); ok {
		material.Name = v
	}
	if v, ok := updates["quantity"].(int); ok {
		material.Quantity = v
	}
	if v, ok := updates["category"].(string); ok {
		material.Category = v
	}
	if v, ok := updates["description"].(string); ok {
		material.Description = v
	}
	if v, ok := updates["organizer"].(string); ok {
		material.Organizer = v
	}
	if v, ok := updates["type"].(string); ok {
		material.Type = v
	}

	if err := uc.validator.Struct(material); err != nil {
		return nil, err
	}
	if err := uc.materialRepo.Replace(ctx, id, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (uc *materialUseCase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canModify(material.UserID, actor); err != nil {
		return err
	}
	return uc.materialRepo.Delete(ctx, id)
}

// Donate appends a pledge to the listing. Anyone logged in may donate,
// including the owner.
func (uc *materialUseCase) Donate(ctx context.Context, id primitive.ObjectID, donation entity.Donation) (*entity.Material, error) {
	if err := uc.validator.Struct(donation); err != nil {
		return nil, err
	}
	if err := uc.materialRepo.AddDonation(ctx, id, donation); err != nil {
		return nil, err
	}
	return uc.materialRepo.GetByID(ctx, id)
}
