package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/repository/repositorytest"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repositorytest.NewFakeUserRepo()
	authUseCase := auth.NewAuthUseCase(userRepo, "0123456789abcdef0123456789abcdef", 24)

	_, err := authUseCase.Register(context.Background(), &auth.RegisterRequest{
		Email:        "alice@campus.edu",
		Password:     "secret123",
		Name:         "Alice",
		Age:          21,
		Gender:       domain.GenderFemale,
		InterestedIn: domain.InterestMale,
		Image:        "/uploads/alice.jpg",
		Instagram:    "alice.codes",
	})
	require.NoError(t, err)

	result, err := authUseCase.Login(context.Background(), &auth.LoginRequest{
		Email:    "alice@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/whoami", NewAuthMiddleware(authUseCase).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("user_id")})
	})

	return router, result.Token
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	router, token := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	router, token := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
