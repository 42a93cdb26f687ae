package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/service"
	"github.com/edusphere/edusphere-api/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memSnapshots struct {
	data map[string][]byte
}

func (m *memSnapshots) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	payload, ok := m.data[slot]
	return payload, ok, nil
}

func (m *memSnapshots) Save(ctx context.Context, slot string, payload []byte) error {
	m.data[slot] = payload
	return nil
}

func (m *memSnapshots) Delete(ctx context.Context, slot string) error {
	delete(m.data, slot)
	return nil
}

func newAuthServiceForTest(t *testing.T) *service.AuthService {
	t.Helper()
	st := store.New(context.Background(), &memSnapshots{data: make(map[string][]byte)}, zap.NewNop())
	return service.NewAuthService(st, nil, service.AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "edusphere-test",
	})
}

func newSessionRouter(authService *service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{Session(authService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims, ok := SessionClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestSessionRejectsMissingOrMalformedHeader(t *testing.T) {
	router := newSessionRouter(newAuthServiceForTest(t))

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc123"},
		{"bare token", "sometoken"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSessionAcceptsValidToken(t *testing.T) {
	authService := newAuthServiceForTest(t)
	router := newSessionRouter(authService)

	resp, err := authService.Login(context.Background(), service.LoginRequest{Role: "ADMIN"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ADMIN")
}

func TestRequireRolesGatesByClaimRole(t *testing.T) {
	authService := newAuthServiceForTest(t)
	router := newSessionRouter(authService, RequireRoles(models.RoleAdmin, models.RoleTeacher))

	teacher, err := authService.Login(context.Background(), service.LoginRequest{Role: "TEACHER"})
	require.NoError(t, err)
	student, err := authService.Login(context.Background(), service.LoginRequest{Role: "STUDENT"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+teacher.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+student.AccessToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
