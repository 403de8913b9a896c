package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	return serve(router, "POST", path, body)
}

// decodeData unwraps a SuccessResponse into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	dataBytes, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(dataBytes, out))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
