package http

import (
	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type EventHandler struct {
	eventUC usecasecontract.IEventUseCase
}

func NewEventHandler(eventUC usecasecontract.IEventUseCase) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// Create posts a new event. The image URI comes from the upload middleware.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}

	user := middleware.CurrentUser(c)
	event := &entity.Event{
		Image:       middleware.UploadedImage(c),
		Title:       req.Title,
		Date:        req.Date,
		Address:     req.Address,
		Category:    req.Category,
		Organizer:   req.Organizer,
		Description: req.Description,
		UserID:      user.ID,
	}
	created, err := h.eventUC.Create(c.Request.Context(), event)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, created)
}

func (h *EventHandler) List(c *gin.Context) {
	opts := parseListOptions(c, 12)
	events, total, err := h.eventUC.List(c.Request.Context(), opts, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ListResult{Items: events, Total: total})
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	event, err := h.eventUC.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, event)
}

// Update edits an event; only provided fields change. A new image, when
// uploaded, replaces the old URI.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	var req dto.EventRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Date != "" {
		updates["date"] = req.Date
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if len(req.Category) > 0 {
		updates["category"] = req.Category
	}
	if req.Organizer != "" {
		updates["organizer"] = req.Organizer
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if image := middleware.UploadedImage(c); image != "" {
		updates["image"] = image
	}

	event, err := h.eventUC.Update(c.Request.Context(), id, middleware.CurrentUser(c), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	if err := h.eventUC.Delete(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
