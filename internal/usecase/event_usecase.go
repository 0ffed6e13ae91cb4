package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type eventUseCase struct {
	eventRepo contract.IEventRepository
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

func NewEventUseCase(
	eventRepo contract.IEventRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) usecasecontract.IEventUseCase {
	return &eventUseCase{eventRepo: eventRepo, validator: validator, logger: logger}
}

// canModify allows the owner and admins through.
func canModify(ownerID primitive.ObjectID, actor *entity.User) error {
	if actor.Role == entity.RoleAdmin || actor.ID == ownerID {
		return nil
	}
	return apperr.Forbidden("not the owner of this resource")
}

func (uc *eventUseCase) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if err := uc.validator.Struct(event); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *eventUseCase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Event, error) {
	return uc.eventRepo.GetByID(ctx, id)
}

func (uc *eventUseCase) List(ctx context.Context, opts contract.ListOptions, owner *primitive.ObjectID) ([]entity.Event, int64, error) {
	return uc.eventRepo.List(ctx, opts, owner)
}

// Update merges the provided fields into the stored event, re-validates the
// whole document and replaces it. The owner and creation time never change.
func (uc *eventUseCase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, updates map[string]interface{}) (*entity.Event, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canModify(event.UserID, actor); err != nil {
		return nil, err
	}

	if v, ok := updates["image"].(string); ok {
		event.Image = v
	}
	if v, ok := updates["title"].(string); ok {
		event.Title = v
	}
	if v, ok := updates["date"].(string); ok {
		event.Date = v
	}
	if v, ok := updates["address"].(string); ok {
		event.Address = v
	}
	if v, ok := updates["category"].([]string); ok {
		event.Category = v
	}
	if v, ok := updates["organizer"].(string); ok {
		event.Organizer = v
	}
	if v, ok := updates["description"].(string); ok {
		event.Description = v
	}

	if err := uc.validator.Struct(event); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Replace(ctx, id, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *eventUseCase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canModify(event.UserID, actor); err != nil {
		return err
	}
	return uc.eventRepo.Delete(ctx, id)
}
