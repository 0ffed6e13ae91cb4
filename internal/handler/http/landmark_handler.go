package http

import (
	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type LandmarkHandler struct {
	landmarkUC usecasecontract.ILandmarkUseCase
}

func NewLandmarkHandler(landmarkUC usecasecontract.ILandmarkUseCase) *LandmarkHandler {
	return &LandmarkHandler{landmarkUC: landmarkUC}
}

// Create adds a landmark. A point without coordinates cannot be drawn on
// the map, so both are rejected up front.
func (h *LandmarkHandler) Create(c *gin.Context) {
	var req dto.LandmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		respondBadRequest(c, "coordinates are required")
		return
	}

	user := middleware.CurrentUser(c)
	landmark := &entity.Landmark{
		Name:        req.Name,
		Address:     req.Address,
		Tel:         req.Tel,
		CL:          req.CL,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Categories:  req.Categories,
		Description: req.Description,
		UserID:      user.ID,
	}
	created, err := h.landmarkUC.Create(c.Request.Context(), landmark)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, created)
}

// List returns the full filtered, sorted set for the map view.
func (h *LandmarkHandler) List(c *gin.Context) {
	opts := parseListOptions(c, 12)
	landmarks, total, err := h.landmarkUC.List(c.Request.Context(), opts, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ListResult{Items: landmarks, Total: total})
}

func (h *LandmarkHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	landmark, err := h.landmarkUC.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, landmark)
}

func (h *LandmarkHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	var req dto.LandmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		respondBadRequest(c, "coordinates are required")
		return
	}

	updates := map[string]interface{}{
		"lat": *req.Lat,
		"lng": *req.Lng,
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Tel != "" {
		updates["tel"] = req.Tel
	}
	if req.CL != "" {
		updates["cl"] = req.CL
	}
	if len(req.Categories) > 0 {
		updates["categories"] = req.Categories
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	landmark, err := h.landmarkUC.Update(c.Request.Context(), id, middleware.CurrentUser(c), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, landmark)
}

func (h *LandmarkHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	if err := h.landmarkUC.Delete(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
