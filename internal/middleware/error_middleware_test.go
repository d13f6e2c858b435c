package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (int, dto.Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return recorder.Code, envelope
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"empty course list", apperrors.ErrEmptyCourseList, http.StatusBadRequest},
		{"missing identity", apperrors.ErrMissingPlanIdent, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"plan not found", apperrors.ErrPlanNotFound, http.StatusNotFound},
		{"school not found", apperrors.ErrSchoolNotFound, http.StatusNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"upstream failure", apperrors.ErrUpstreamFailure, http.StatusBadGateway},
		{"storage failure", apperrors.NewStorageError(errors.New("pq: broken")), http.StatusInternalServerError},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := runHandleAPIError(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, envelope.Success)
			assert.NotEmpty(t, envelope.Message)
		})
	}
}

func TestHandleAPIError_CustomMessageSurfaces(t *testing.T) {
	_, envelope := runHandleAPIError(t, apperrors.NewValidationError("reschedule list cannot be empty"))

	assert.Equal(t, "reschedule list cannot be empty", envelope.Message)
}

func TestHandleAPIError_StorageDetailDoesNotLeak(t *testing.T) {
	_, envelope := runHandleAPIError(t, apperrors.NewStorageError(errors.New("pq: password authentication failed")))

	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, envelope.Message, "password")
}
