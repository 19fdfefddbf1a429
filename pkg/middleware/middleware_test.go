package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phi-inspection/pkg/token"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var jwtConfig = utils.JWTConfig{Secret: "test-secret", Issuer: "phi-inspection", ExpiryHours: 24}

func protected(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return Auth(jwtConfig, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		utils.ResponseSuccess(w, "ok", map[string]string{
			"id":   userID.String(),
			"name": utils.GetUserNameFromContext(r.Context()),
		})
	}))
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	cases := map[string]string{
		"missing":      "",
		"wrong scheme": "Basic abc",
		"no token":     "Bearer ",
		"garbage":      "Bearer not-a-jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			protected(t, &called).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called, "handler must not run")
		})
	}
}

func TestAuthRejectionUsesErrorEnvelope(t *testing.T) {
	cases := map[string]string{
		"":              "Missing authorization token",
		"Token abc":     "Invalid token format. Use: Bearer <token>",
		"Bearer abc.de": "Invalid or expired token",
	}
	for header, message := range cases {
		called := false
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		protected(t, &called).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, header)
		var body utils.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Status)
		assert.Equal(t, message, body.Message)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	raw, _, err := token.Mint(jwtConfig, time.Now().Add(-48*time.Hour), token.Payload{UserID: uuid.New(), Name: "x", Role: "phi"})
	require.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	protected(t, &called).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthAcceptsValidTokenCaseInsensitiveScheme(t *testing.T) {
	userID := uuid.New()
	raw, _, err := token.Mint(jwtConfig, time.Now(), token.Payload{UserID: userID, Name: "Kamala", Role: "phi"})
	require.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+raw)
	rec := httptest.NewRecorder()

	protected(t, &called).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "Kamala")
}

func TestRecoverReturnsGenericServerError(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("db exploded: password=hunter2")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestLoggerPassesThroughStatus(t *testing.T) {
	h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestMetricsRecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/api/shops/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/shops/"+uuid.NewString(), nil))
	}

	count := testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/api/shops/{id}", "204"))
	assert.Equal(t, float64(2), count)
}

func TestMetricsNilRegistererIsNoop(t *testing.T) {
	metrics := NewHTTPMetrics(nil)
	h := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	h := CORS([]string{"https://dashboard.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/shops", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://dashboard.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost))
}
