package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubShopService struct {
	err        error
	lastCaller usecase.Caller
	lastID     uuid.UUID
}

func (s *stubShopService) Create(_ context.Context, caller usecase.Caller, req *request.CreateShopRequest) (*response.ShopResponse, error) {
	s.lastCaller = caller
	if s.err != nil {
		return nil, s.err
	}
	return &response.ShopResponse{ID: uuid.NewString(), Name: req.Name}, nil
}

func (s *stubShopService) List(_ context.Context, caller usecase.Caller) ([]response.ShopResponse, error) {
	s.lastCaller = caller
	return []response.ShopResponse{}, s.err
}

func (s *stubShopService) Get(_ context.Context, caller usecase.Caller, id uuid.UUID) (*response.ShopResponse, error) {
	s.lastCaller, s.lastID = caller, id
	if s.err != nil {
		return nil, s.err
	}
	return &response.ShopResponse{ID: id.String()}, nil
}

func (s *stubShopService) Update(_ context.Context, caller usecase.Caller, id uuid.UUID, _ *request.UpdateShopRequest) (*response.ShopResponse, error) {
	s.lastCaller, s.lastID = caller, id
	if s.err != nil {
		return nil, s.err
	}
	return &response.ShopResponse{ID: id.String()}, nil
}

func (s *stubShopService) Delete(_ context.Context, caller usecase.Caller, id uuid.UUID) error {
	s.lastCaller, s.lastID = caller, id
	return s.err
}

func (s *stubShopService) BackfillOwnership(_ context.Context, caller usecase.Caller) (*response.BackfillResponse, error) {
	s.lastCaller = caller
	if s.err != nil {
		return nil, s.err
	}
	return &response.BackfillResponse{UpdatedShops: []string{}}, nil
}

func shopRouter(svc usecase.ShopService) http.Handler {
	h := NewShopHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/shops", h.CreateShop)
	r.Get("/api/shops/{id}", h.GetShop)
	r.Delete("/api/shops/{id}", h.DeleteShop)
	return r
}

func authed(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(utils.SetUserContext(req.Context(), userID, "Kamala", "phi"))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetShopPassesCallerAndID(t *testing.T) {
	svc := &stubShopService{}
	userID, shopID := uuid.New(), uuid.New()

	rec := httptest.NewRecorder()
	shopRouter(svc).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/shops/"+shopID.String(), nil), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, svc.lastCaller.ID)
	assert.Equal(t, "Kamala", svc.lastCaller.Name)
	assert.Equal(t, shopID, svc.lastID)
	assert.True(t, decode(t, rec).Status)
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"forbidden", apperror.Forbidden("Not authorized to access this shop"), http.StatusForbidden, "Not authorized to access this shop"},
		{"not found", apperror.NotFound("Shop not found"), http.StatusNotFound, "Shop not found"},
		{"conflict", apperror.Conflict("Shop with this license number already exists"), http.StatusBadRequest, "Shop with this license number already exists"},
		{"internal", apperror.Internal(errors.New("pq: relation shops does not exist"), "failed to load shop"), http.StatusInternalServerError, "internal server error"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubShopService{err: tc.err}
			rec := httptest.NewRecorder()
			shopRouter(svc).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/shops/"+uuid.NewString(), nil), uuid.New()))

			assert.Equal(t, tc.status, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Status)
			assert.Equal(t, tc.message, body.Message)
			assert.NotContains(t, rec.Body.String(), "relation shops")
		})
	}
}

func TestInvalidShopIDIsBadRequest(t *testing.T) {
	svc := &stubShopService{}
	rec := httptest.NewRecorder()
	shopRouter(svc).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/api/shops/not-a-uuid", nil), uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, uuid.Nil, svc.lastID)
}

func TestMissingCallerIsUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	shopRouter(&stubShopService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shops/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateShopValidation(t *testing.T) {
	svc := &stubShopService{}

	rec := httptest.NewRecorder()
	shopRouter(svc).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/api/shops", strings.NewReader(`{"name":""}`)), uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	errs, ok := body.Errors.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "ownerName")
}

func TestCreateShopMalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	shopRouter(&stubShopService{}).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/api/shops", strings.NewReader(`{"name":`)), uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode(t, rec).Message)
}

func TestCreateShopCreated(t *testing.T) {
	svc := &stubShopService{}
	userID := uuid.New()
	payload := `{"name":"Lanka Bakers","address":"12 Temple Road","ownerName":"Sunil","employeeCount":3}`

	rec := httptest.NewRecorder()
	shopRouter(svc).ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/api/shops", strings.NewReader(payload)), userID))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, svc.lastCaller.ID)
}
