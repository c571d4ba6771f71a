package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/shared/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, errors.NewFieldValidationError("Validation failed", []errors.FieldError{
		{Field: "email", Message: "email must be a valid email address"},
		{Field: "description", Message: "description must be at least 10 characters long"},
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Fields, 2)
	assert.Equal(t, "email", resp.Error.Fields[0].Field)
}

func TestErrorResponseWithError_HidesPlainErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, stderrors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "internal_error", resp.Error.Type)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestListSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ListSuccessResponse(c, []string{"a", "b"}, 21, 2, 10)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(21), body.Data.Total)
	assert.Equal(t, 3, body.Data.Pages)
	assert.Equal(t, 10, body.Data.Limit)
}
