package http

import (
	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type MaterialHandler struct {
	materialUC usecasecontract.IMaterialUseCase
}

func NewMaterialHandler(materialUC usecasecontract.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{materialUC: materialUC}
}

// Create posts a new listing. The image URI comes from the upload
// middleware.
func (h *MaterialHandler) Create(c *gin.Context) {
	var req dto.MaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}

	user := middleware.CurrentUser(c)
	material := &entity.Material{
		Image:       middleware.UploadedImage(c),
		Name:        req.Name,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: req.Description,
		Organizer:   req.Organizer,
		Type:        req.Type,
		UserID:      user.ID,
	}
	created, err := h.materialUC.Create(c.Request.Context(), material)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, created)
}

// List returns listings, optionally pinned to the share or find type. The
// material pages default to 8 per page.
func (h *MaterialHandler) List(materialType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := parseListOptions(c, 8)
		materials, total, err := h.materialUC.List(c.Request.Context(), opts, materialType, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, dto.ListResult{Items: materials, Total: total})
	}
}

func (h *MaterialHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	material, err := h.materialUC.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, material)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	var req dto.MaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Quantity > 0 {
		updates["quantity"] = req.Quantity
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Organizer != "" {
		updates["organizer"] = req.Organizer
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if image := middleware.UploadedImage(c); image != "" {
		updates["image"] = image
	}

	material, err := h.materialUC.Update(c.Request.Context(), id, middleware.CurrentUser(c), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	if err := h.materialUC.Delete(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// Donate records a pledge against a listing.
func (h *MaterialHandler) Donate(c *gin.Context) {
	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	id, ok := parseObjectID(c, req.ID)
	if !ok {
		return
	}

	donation := entity.Donation{Donator: req.Donator, Quantity: req.Quantity, Phone: req.Phone}
	material, err := h.materialUC.Donate(c.Request.Context(), id, donation)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, material)
}
