package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func keyFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	operatorKeys := []string{"ops-primary", "ops-rotating"}

	tests := []struct {
		name             string
		keys             []string
		header           string
		query            string
		expectedStatus   int
		expectedBody     string
		expectedOperator string
	}{
		{
			name:             "primary key",
			keys:             operatorKeys,
			header:           "ops-primary",
			expectedStatus:   http.StatusOK,
			expectedOperator: keyFingerprint("ops-primary"),
		},
		{
			name:             "rotating key",
			keys:             operatorKeys,
			header:           "ops-rotating",
			expectedStatus:   http.StatusOK,
			expectedOperator: keyFingerprint("ops-rotating"),
		},
		{
			name:           "missing key",
			keys:           operatorKeys,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "API key is required",
		},
		{
			name:           "key in query string is ignored",
			keys:           operatorKeys,
			query:          "api_key=ops-primary",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "API key is required",
		},
		{
			name:           "unknown key",
			keys:           operatorKeys,
			header:         "ops-primar",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid API key",
		},
		{
			name:           "no keys configured",
			header:         "anything",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), APIKeyAuth(tt.keys))
			router.GET("/api/admin/audit-logs", func(c *gin.Context) {
				c.String(http.StatusOK, GetOperator(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/audit-logs?"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedOperator, w.Body.String())
				return
			}
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
			assert.Contains(t, w.Body.String(), "request_id")
		})
	}
}
