package http

import (
	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type UserHandler struct {
	userUC     usecasecontract.IUserUseCase
	eventUC    usecasecontract.IEventUseCase
	materialUC usecasecontract.IMaterialUseCase
	landmarkUC usecasecontract.ILandmarkUseCase
}

func NewUserHandler(
	userUC usecasecontract.IUserUseCase,
	eventUC usecasecontract.IEventUseCase,
	materialUC usecasecontract.IMaterialUseCase,
	landmarkUC usecasecontract.ILandmarkUseCase,
) *UserHandler {
	return &UserHandler{userUC: userUC, eventUC: eventUC, materialUC: materialUC, landmarkUC: landmarkUC}
}

// Register creates an account and opens its first session.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	user, token, err := h.userUC.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.LoginResult{Token: token, Email: user.Email, Role: user.Role})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	user, token, err := h.userUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.LoginResult{Token: token, Email: user.Email, Role: user.Role})
}

// Extend swaps the presented token for a fresh one.
func (h *UserHandler) Extend(c *gin.Context) {
	user := middleware.CurrentUser(c)
	token := c.GetString(middleware.ContextTokenKey)

	newToken, err := h.userUC.Extend(c.Request.Context(), user, token)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.TokenResult{Token: newToken})
}

func (h *UserHandler) Profile(c *gin.Context) {
	respondOK(c, dto.ToProfileResult(middleware.CurrentUser(c)))
}

func (h *UserHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	token := c.GetString(middleware.ContextTokenKey)

	if err := h.userUC.Logout(c.Request.Context(), user.ID, token); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// Change applies a partial profile edit. A new avatar arrives through the
// upload middleware; body fields left empty stay as they are.
func (h *UserHandler) Change(c *gin.Context) {
	var req dto.ChangeProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if avatar := middleware.UploadedImage(c); avatar != "" {
		updates["avatar"] = avatar
	}

	user := middleware.CurrentUser(c)
	updated, err := h.userUC.UpdateProfile(c.Request.Context(), user.ID, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToProfileResult(updated))
}

// List is the admin-only member directory.
func (h *UserHandler) List(c *gin.Context) {
	opts := parseListOptions(c, 12)
	users, total, err := h.userUC.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ListResult{Items: users, Total: total})
}

func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	var req dto.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	eventID, ok := parseObjectID(c, req.EventID)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	favored, err := h.userUC.ToggleFavorite(c.Request.Context(), user.ID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.FavoriteResult{IsFavorite: favored})
}

// FavoriteEvents resolves the user's favorites to full event documents.
func (h *UserHandler) FavoriteEvents(c *gin.Context) {
	user := middleware.CurrentUser(c)
	events, err := h.userUC.FavoriteEvents(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, events)
}

// RemoveFavorite is the remove-only variant of the toggle.
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	var req dto.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "malformed request body")
		return
	}
	eventID, ok := parseObjectID(c, req.EventID)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.userUC.RemoveFavorite(c.Request.Context(), user.ID, eventID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.FavoriteResult{IsFavorite: false})
}

// OwnEvents lists the current user's event posts.
func (h *UserHandler) OwnEvents(c *gin.Context) {
	user := middleware.CurrentUser(c)
	opts := parseListOptions(c, 12)
	events, total, err := h.eventUC.List(c.Request.Context(), opts, &user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ListResult{Items: events, Total: total})
}

// OwnMaterials lists the current user's share or find listings.
func (h *UserHandler) OwnMaterials(materialType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		opts := parseListOptions(c, 12)
		materials, total, err := h.materialUC.List(c.Request.Context(), opts, materialType, &user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, dto.ListResult{Items: materials, Total: total})
	}
}

// OwnLandmarks lists the current user's landmarks, unpaginated.
func (h *UserHandler) OwnLandmarks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	opts := parseListOptions(c, 12)
	landmarks, total, err := h.landmarkUC.List(c.Request.Context(), opts, &user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ListResult{Items: landmarks, Total: total})
}
