package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       AddItemRequest
		expectedError error
	}{
		{
			name:    "valid request",
			request: AddItemRequest{ProductID: "B1", Name: "Book", Price: decimal.NewFromInt(100000)},
		},
		{
			name:    "free item",
			request: AddItemRequest{ProductID: "B2", Name: "Bookmark", Price: decimal.Zero},
		},
		{
			name:          "blank id",
			request:       AddItemRequest{ProductID: "  ", Name: "Book", Price: decimal.NewFromInt(1)},
			expectedError: ErrInvalidProductID,
		},
		{
			name:          "negative price",
			request:       AddItemRequest{ProductID: "B1", Name: "Book", Price: decimal.NewFromInt(-1)},
			expectedError: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReloadCartRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		lines         []ReloadLine
		expectedError error
	}{
		{name: "empty listing", lines: nil},
		{
			name:  "valid listing",
			lines: []ReloadLine{{ProductID: "B1", Price: decimal.NewFromInt(100000), Quantity: 2}},
		},
		{
			name:          "zero quantity",
			lines:         []ReloadLine{{ProductID: "B1", Price: decimal.NewFromInt(100000)}},
			expectedError: ErrInvalidQuantity,
		},
		{
			name:          "missing id",
			lines:         []ReloadLine{{Quantity: 1}},
			expectedError: ErrInvalidProductID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ReloadCartRequest{Lines: tt.lines}
			assert.Equal(t, tt.expectedError == nil, req.Validate() == nil)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, req.Validate())
			}
		})
	}
}

func TestReloadCartRequest_ToCartLines(t *testing.T) {
	req := ReloadCartRequest{Lines: []ReloadLine{
		{ProductID: " B1 ", Name: "A", Price: decimal.NewFromInt(100000), Quantity: 3},
		{ProductID: "B2", Name: "B", Price: decimal.RequireFromString("12.5"), Quantity: 2},
	}}

	lines := req.ToCartLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "B1", lines[0].ProductID)
	assert.True(t, lines[0].LineTotal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, lines[1].LineTotal.Equal(decimal.NewFromInt(25)))
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "price: must not be negative", ErrInvalidPrice.Error())
}
