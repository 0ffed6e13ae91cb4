package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/usecase"
)

type mockCommentRepo struct {
	Comment *entity.Comment
	Missing bool

	Created     *entity.Comment
	LastContent string
	Deleted     int
}

var _ contract.ICommentRepository = (*mockCommentRepo)(nil)

func (m *mockCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	comment.ID = primitive.NewObjectID()
	m.Created = comment
	return nil
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error) {
	if m.Missing {
		return nil, apperr.NotFound("comment not found")
	}
	return m.Comment, nil
}

func (m *mockCommentRepo) ListByMaterial(ctx context.Context, materialID primitive.ObjectID) ([]entity.CommentDetail, error) {
	return []entity.CommentDetail{}, nil
}

func (m *mockCommentRepo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	m.LastContent = content
	return nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.Deleted++
	return nil
}

func TestCommentCreate_TrimsContent(t *testing.T) {
	material := fixtureMaterial(primitive.NewObjectID())
	repo := &mockCommentRepo{}
	uc := usecase.NewCommentUseCase(repo, &mockMaterialRepo{Material: material}, passValidator{}, noopLogger{})

	got, err := uc.Create(context.Background(), &entity.Comment{
		MaterialID: material.ID,
		UserID:     primitive.NewObjectID(),
		Content:    "  請問還有嗎？  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "請問還有嗎？", got.Content)
	require.NotNil(t, repo.Created)
}

func TestCommentCreate_MissingMaterial(t *testing.T) {
	repo := &mockCommentRepo{}
	uc := usecase.NewCommentUseCase(repo, &mockMaterialRepo{Missing: true}, passValidator{}, noopLogger{})

	_, err := uc.Create(context.Background(), &entity.Comment{
		MaterialID: primitive.NewObjectID(),
		UserID:     primitive.NewObjectID(),
		Content:    "請問還有嗎？",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Nil(t, repo.Created)
}

func TestCommentUpdate(t *testing.T) {
	owner := primitive.NewObjectID()
	comment := &entity.Comment{ID: primitive.NewObjectID(), UserID: owner, Content: "舊留言"}
	repo := &mockCommentRepo{Comment: comment}
	uc := usecase.NewCommentUseCase(repo, &mockMaterialRepo{}, passValidator{}, noopLogger{})

	got, err := uc.Update(context.Background(), comment.ID, &entity.User{ID: owner}, " 新留言 ")
	require.NoError(t, err)
	assert.Equal(t, "新留言", got.Content)
	assert.Equal(t, "新留言", repo.LastContent)
}

func TestCommentUpdate_EmptyContent(t *testing.T) {
	repo := &mockCommentRepo{}
	uc := usecase.NewCommentUseCase(repo, &mockMaterialRepo{}, passValidator{}, noopLogger{})

	_, err := uc.Update(context.Background(), primitive.NewObjectID(), &entity.User{}, "   ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "comment content cannot be empty", apperr.MessageOf(err))
}

func TestCommentDelete_OwnerOnly(t *testing.T) {
	owner := primitive.NewObjectID()
	comment := &entity.Comment{ID: primitive.NewObjectID(), UserID: owner}
	repo := &mockCommentRepo{Comment: comment}
	uc := usecase.NewCommentUseCase(repo, &mockMaterialRepo{}, passValidator{}, noopLogger{})

	err := uc.Delete(context.Background(), comment.ID, &entity.User{ID: primitive.NewObjectID()})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, 0, repo.Deleted)

	require.NoError(t, uc.Delete(context.Background(), comment.ID, &entity.User{ID: owner}))
	assert.Equal(t, 1, repo.Deleted)
}
