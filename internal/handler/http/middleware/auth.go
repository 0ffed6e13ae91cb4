package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

// Context keys set by the middleware chain.
const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
	ContextImageKey = "image"
)

// extendablePaths are the routes that accept an expired (but otherwise
// valid and still-live) token, so a lapsed session can be renewed or closed.
var extendablePaths = map[string]bool{
	"/user/extend": true,
	"/user/logout": true,
}

// Auth resolves the bearer token to a user and attaches both to the
// context.
func Auth(users usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("no token provided"))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("no token provided"))
			return
		}

		user, err := users.Authenticate(c.Request.Context(), token, extendablePaths[c.FullPath()])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(apperr.MessageOf(err)))
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// Admin gates a route to administrators. It must run after Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("admin access required"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
