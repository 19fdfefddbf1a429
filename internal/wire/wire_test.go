package wire

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phi-inspection/internal/data/repository"
	"phi-inspection/pkg/token"
	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "phi-inspection", AllowedOrigins: []string{"*"}},
		JWT: utils.JWTConfig{Secret: "wire-secret", Issuer: "phi-inspection", ExpiryHours: 24},
	}
}

func newApp(t *testing.T) (*App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	log := zap.NewNop()
	cfg := testConfig()
	return Wiring(mock, repository.NewRepository(mock, log), cfg, log), mock
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	raw, _, err := token.Mint(testConfig().JWT, time.Now(), token.Payload{UserID: userID, Name: "Officer", Role: "phi"})
	require.NoError(t, err)
	return "Bearer " + raw
}

func TestHealth(t *testing.T) {
	app, mock := newApp(t)

	mock.ExpectPing()
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newApp(t)

	for _, path := range []string{
		"/api/users/profile",
		"/api/shops",
		"/api/inspections",
		"/api/inspections/analytics/high-risk",
		"/api/tasks",
	} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestTaskListReachesStore(t *testing.T) {
	app, mock := newApp(t)
	userID := uuid.New()

	mock.ExpectQuery("FROM tasks WHERE created_by").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "location", "scheduled_time", "task_date", "status", "created_by", "created_at", "updated_at",
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", bearer(t, userID))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newApp(t)

	app.Router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
}
