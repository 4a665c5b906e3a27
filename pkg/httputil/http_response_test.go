package httputil_test

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TereBts/studystar/pkg/httputil"
)

func TestWriteErrorResponse(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteErrorResponse(rec, http.StatusNotFound, "goal doesn't exist", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var resp httputil.ErrorResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "goal doesn't exist", resp.Message)
		assert.Empty(t, resp.Details)
	})
	t.Run("details attached", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteErrorResponse(rec, http.StatusBadRequest, "invalid request body", errors.New("missing field"))
		var resp httputil.ErrorResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "missing field", resp.Details)
	})
}

func TestWriteJSONResponse(t *testing.T) {
	t.Run("encodes body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteJSONResponse(rec, http.StatusOK, map[string]any{"total_hours": 3.3})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"total_hours": 3.3}`, rec.Body.String())
	})
	t.Run("nil body writes only the status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteJSONResponse(rec, http.StatusNoContent, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
	t.Run("unencodable body degrades to an error envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteJSONResponse(rec, http.StatusOK, map[string]any{"rate": math.NaN()})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp httputil.ErrorResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "response encoding failed", resp.Message)
	})
}
