package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyboard/easyboard-go/internal/core/domain"
)

func TestDefaultFilters(t *testing.T) {
	filters := domain.DefaultFilters()

	assert.Equal(t, domain.OrderingNewestFirst, filters.Ordering)
	assert.Empty(t, filters.Category)
	assert.Empty(t, filters.Condition)
	assert.Empty(t, filters.MinPrice)
	assert.Empty(t, filters.MaxPrice)
	assert.Empty(t, filters.Query)
	assert.Empty(t, filters.DateFrom)
	assert.Empty(t, filters.DateTo)
}

func TestFilterSet_SetField(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantError bool
		errorMsg  string
		check     func(t *testing.T, f domain.FilterSet)
	}{
		{
			name:  "sets_category",
			field: domain.FieldCategory,
			value: "electronics",
			check: func(t *testing.T, f domain.FilterSet) {
				assert.Equal(t, "electronics", f.Category)
			},
		},
		{
			name:  "sets_query",
			field: domain.FieldQuery,
			value: "road bike",
			check: func(t *testing.T, f domain.FilterSet) {
				assert.Equal(t, "road bike", f.Query)
			},
		},
		{
			name:  "sets_price_bounds_independently",
			field: domain.FieldMinPrice,
			value: "100",
			check: func(t *testing.T, f domain.FilterSet) {
				assert.Equal(t, "100", f.MinPrice)
				assert.Empty(t, f.MaxPrice)
			},
		},
		{
			name:  "accepts_oldest_first_ordering",
			field: domain.FieldOrdering,
			value: domain.OrderingOldestFirst,
			check: func(t *testing.T, f domain.FilterSet) {
				assert.Equal(t, domain.OrderingOldestFirst, f.Ordering)
			},
		},
		{
			name:      "rejects_invalid_ordering",
			field:     domain.FieldOrdering,
			value:     "price",
			wantError: true,
			errorMsg:  "invalid ordering",
		},
		{
			name:      "rejects_unknown_field",
			field:     "page_size",
			value:     "50",
			wantError: true,
			errorMsg:  "unknown filter field",
		},
		{
			name:  "clears_field_with_empty_value",
			field: domain.FieldCondition,
			value: "",
			check: func(t *testing.T, f domain.FilterSet) {
				assert.Empty(t, f.Condition)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := domain.DefaultFilters()
			err := filters.SetField(tt.field, tt.value)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, filters)
			}
		})
	}
}

func TestFilterSet_SetField_LeavesOtherFieldsUntouched(t *testing.T) {
	filters := domain.DefaultFilters()
	require.NoError(t, filters.SetField(domain.FieldCategory, "sports"))
	require.NoError(t, filters.SetField(domain.FieldQuery, "bike"))

	require.NoError(t, filters.SetField(domain.FieldCondition, "used"))

	assert.Equal(t, "sports", filters.Category)
	assert.Equal(t, "bike", filters.Query)
	assert.Equal(t, "used", filters.Condition)
	assert.Equal(t, domain.OrderingNewestFirst, filters.Ordering)
}

func TestFilterSet_QueryParams(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.FilterSet
		expected map[string]string
	}{
		{
			name:     "defaults_send_only_ordering",
			filters:  domain.DefaultFilters(),
			expected: map[string]string{"ordering": domain.OrderingNewestFirst},
		},
		{
			name:     "empty_set_sends_nothing",
			filters:  domain.FilterSet{},
			expected: map[string]string{},
		},
		{
			name: "only_set_fields_are_included",
			filters: domain.FilterSet{
				Category: "electronics",
				MinPrice: "100",
				Query:    "laptop",
				Ordering: domain.OrderingNewestFirst,
			},
			expected: map[string]string{
				"category":  "electronics",
				"min_price": "100",
				"q":         "laptop",
				"ordering":  domain.OrderingNewestFirst,
			},
		},
		{
			name: "all_fields_set",
			filters: domain.FilterSet{
				Category:  "sports",
				Condition: "used",
				MinPrice:  "50",
				MaxPrice:  "500",
				Query:     "bike",
				Ordering:  domain.OrderingOldestFirst,
				DateFrom:  "2025-01-01",
				DateTo:    "2025-06-30",
			},
			expected: map[string]string{
				"category":  "sports",
				"condition": "used",
				"min_price": "50",
				"max_price": "500",
				"q":         "bike",
				"ordering":  domain.OrderingOldestFirst,
				"date_from": "2025-01-01",
				"date_to":   "2025-06-30",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.QueryParams())
		})
	}
}
