package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	"github.com/peiwenliu/sharecircle/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authRouter(userUC *mocks.MockUserUsecase) *gin.Engine {
	r := gin.New()
	auth := middleware.Auth(userUC)
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c).Username})
	}
	r.GET("/user/profile", auth, ok)
	r.PATCH("/user/extend", auth, ok)
	r.DELETE("/user/logout", auth, ok)
	return r
}

func do(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	r := authRouter(mocks.NewMockUserUsecase())

	w := do(r, "GET", "/user/profile", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "GET", "/user/profile", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	userUC := mocks.NewMockUserUsecase()
	r := authRouter(userUC)

	w := do(r, "GET", "/user/profile", "Bearer goodtoken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestAuth_InvalidToken(t *testing.T) {
	userUC := mocks.NewMockUserUsecase()
	userUC.ShouldFailAuthenticate = true
	r := authRouter(userUC)

	w := do(r, "GET", "/user/profile", "Bearer badtoken")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuth_ExpiredTokenOnlyPassesOnRenewalRoutes(t *testing.T) {
	userUC := mocks.NewMockUserUsecase()
	userUC.ShouldExpireAuthenticate = true
	r := authRouter(userUC)

	w := do(r, "GET", "/user/profile", "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login expired")

	w = do(r, "PATCH", "/user/extend", "Bearer expired")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "DELETE", "/user/logout", "Bearer expired")
	assert.Equal(t, http.StatusOK, w.Code)

	// The middleware must have asked for expired tolerance on exactly the
	// two renewal routes.
	require.Len(t, userUC.AuthCallPaths, 3)
	assert.Equal(t, []bool{false, true, true}, userUC.AuthCallPaths)
}
