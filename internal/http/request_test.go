package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		body          string
		expectError   bool
		expectedField string
	}{
		{
			name: "valid product",
			body: `{"id": "B1", "name": "Tắt Đèn", "price": 50000}`,
		},
		{
			name:          "blank product id",
			body:          `{"id": "  ", "name": "Tắt Đèn", "price": 50000}`,
			expectError:   true,
			expectedField: "id",
		},
		{
			name:          "negative price",
			body:          `{"id": "B1", "name": "Tắt Đèn", "price": -1}`,
			expectError:   true,
			expectedField: "price",
		},
		{
			name:        "missing name fails binding",
			body:        `{"id": "B1", "price": 50000}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			body:        `{"id": B1}`,
			expectError: true,
		},
		{
			name:        "empty body",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)

			result, err := BindJSON[dto.AddItemRequest](c)

			if !tt.expectError {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "B1", result.ProductID)
				assert.Equal(t, "50000", result.Price.String())
				return
			}
			assert.Error(t, err)
			assert.Nil(t, result)
			if tt.expectedField != "" {
				var verr *dto.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.expectedField, verr.Field)
			}
		})
	}
}

func TestBindJSON_WithoutValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := jsonContext(`{"change": -1}`)

	result, err := BindJSON[dto.AdjustQuantityRequest](c)

	require.NoError(t, err)
	assert.Equal(t, -1, result.Change)
}

func TestBindRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		body            string
		expectOK        bool
		expectedStatus  int
		expectedMessage string
		expectedDetails map[string]string
	}{
		{
			name:     "bound",
			body:     `{"lines": [{"id": "B1", "name": "Tắt Đèn", "price": 50000, "quantity": 2}]}`,
			expectOK: true,
		},
		{
			name:            "validation failure names the field",
			body:            `{"lines": [{"id": "B1", "price": 50000, "quantity": 0}]}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "quantity: must be a positive integer",
			expectedDetails: map[string]string{"field": "quantity"},
		},
		{
			name:           "malformed body",
			body:           `[`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := jsonContext(tt.body)

			req, ok := bindRequest[dto.ReloadCartRequest](c, NewResponseBuilder(c))

			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				require.NotNil(t, req)
				require.Len(t, req.Lines, 1)
				assert.False(t, c.IsAborted())
				return
			}
			assert.Nil(t, req)
			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.NotEmpty(t, resp.Message)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			assert.Equal(t, tt.expectedDetails, resp.Details)
			assert.Len(t, c.Errors, 1)
		})
	}
}
