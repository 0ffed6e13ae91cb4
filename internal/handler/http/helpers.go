package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
)

// statusOf maps an error kind to its HTTP status. This is the only place
// error categories and status codes meet.
func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindBadRequest, apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondOK writes the success envelope. Creates answer 200 like everything
// else.
func respondOK(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, dto.OK(result))
}

// respondError writes the failure envelope with the caller-safe message.
func respondError(c *gin.Context, err error) {
	c.JSON(statusOf(apperr.KindOf(err)), dto.Fail(apperr.MessageOf(err)))
}

// respondBadRequest is for binding failures that never become apperr values.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Fail(message))
}

// parseObjectID validates a path identifier before any store access. A
// malformed id answers 400, not 404.
func parseObjectID(c *gin.Context, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		respondBadRequest(c, "invalid identifier")
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseListOptions reads the shared list query parameters, applying the
// per-resource page size default.
func parseListOptions(c *gin.Context, defaultPerPage int) contract.ListOptions {
	opts := contract.ListOptions{
		Search:       c.Query("search"),
		SortBy:       c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:    c.DefaultQuery("sortOrder", "desc"),
		Page:         1,
		ItemsPerPage: defaultPerPage,
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page >= 1 {
		opts.Page = page
	}
	if per, err := strconv.Atoi(c.Query("itemsPerPage")); err == nil && per >= 1 {
		opts.ItemsPerPage = per
	}
	return opts
}
