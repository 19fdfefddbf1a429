package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"phi-inspection/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInspectionIDFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	id := GenerateInspectionID(now)

	assert.Regexp(t, regexp.MustCompile(`^INS-20260314-[0-9A-F]{8}$`), id)
	assert.NotEqual(t, id, GenerateInspectionID(now))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	type payload struct {
		Title  string `json:"title" validate:"required"`
		Status string `json:"status" validate:"omitempty,oneof=pending completed"`
	}

	errs := ValidateStruct(payload{Status: "later"})
	require.Len(t, errs, 2)
	assert.Equal(t, "This field is required", errs["title"])
	assert.Equal(t, "Must be one of: pending, completed", errs["status"])
	assert.Equal(t, "status: Must be one of: pending, completed; title: This field is required", FormatValidationErrors(errs))
}

func TestResponseErrorHidesServerCause(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperror.Internal(assert.AnError, "insert shop failed"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "internal server error", body.Message)
}

func TestResponseErrorConflictIsBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperror.Conflict("license number already registered"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "license number already registered", body.Message)
}
