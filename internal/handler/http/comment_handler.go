package http

import (
	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type CommentHandler struct {
	commentUC usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUC usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	materialID, ok := parseObjectID(c, req.MaterialID)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	comment := &entity.Comment{
		MaterialID: materialID,
		UserID:     user.ID,
		Content:    req.Content,
	}
	created, err := h.commentUC.Create(c.Request.Context(), comment)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, created)
}

// ListByMaterial returns a material's comments, each carrying the author's
// username and avatar and the material's name and image.
func (h *CommentHandler) ListByMaterial(c *gin.Context) {
	materialID, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	comments, err := h.commentUC.ListByMaterial(c.Request.Context(), materialID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comments)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	var req dto.CommentEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}

	comment, err := h.commentUC.Update(c.Request.Context(), id, middleware.CurrentUser(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	if err := h.commentUC.Delete(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
