package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type commentUseCase struct {
	commentRepo  contract.ICommentRepository
	materialRepo contract.IMaterialRepository
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	materialRepo contract.IMaterialRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo:  commentRepo,
		materialRepo: materialRepo,
		validator:    validator,
		logger:       logger,
	}
}

func (uc *commentUseCase) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	comment.Content = strings.TrimSpace(comment.Content)
	if err := uc.validator.Struct(comment); err != nil {
		return nil, err
	}
	if _, err := uc.materialRepo.GetByID(ctx, comment.MaterialID); err != nil {
		return nil, err
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) ListByMaterial(ctx context.Context, materialID primitive.ObjectID) ([]entity.CommentDetail, error) {
	if _, err := uc.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByMaterial(ctx, materialID)
}

func (uc *commentUseCase) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("comment content cannot be empty")
	}
	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canModify(comment.UserID, actor); err != nil {
		return nil, err
	}
	if err := uc.commentRepo.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}
	comment.Content = content
	return comment, nil
}

func (uc *commentUseCase) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canModify(comment.UserID, actor); err != nil {
		return err
	}
	return uc.commentRepo.Delete(ctx, id)
}
