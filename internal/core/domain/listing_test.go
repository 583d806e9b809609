package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyboard/easyboard-go/internal/core/domain"
)

func TestListing_AuthorID(t *testing.T) {
	listing := &domain.Listing{Author: &domain.Author{ID: 7, Username: "seller"}}
	assert.Equal(t, int64(7), listing.AuthorID())

	assert.Zero(t, (&domain.Listing{}).AuthorID())

	var nilListing *domain.Listing
	assert.Zero(t, nilListing.AuthorID())
}

func TestDraftFromListing(t *testing.T) {
	listing := &domain.Listing{
		Title:        "Vintage road bike",
		Description:  "Steel frame",
		Price:        decimal.RequireFromString("249.50"),
		Category:     "sports",
		Condition:    "used",
		ContactPhone: "+15550100",
		ContactEmail: "seller@example.com",
	}

	draft := domain.DraftFromListing(listing)

	assert.Equal(t, "Vintage road bike", draft.Title)
	assert.Equal(t, "Steel frame", draft.Description)
	assert.Equal(t, "249.5", draft.Price)
	assert.Equal(t, "sports", draft.Category)
	assert.Equal(t, "used", draft.Condition)
	assert.Equal(t, "+15550100", draft.ContactPhone)
	assert.Equal(t, "seller@example.com", draft.ContactEmail)

	assert.Equal(t, domain.ListingDraft{}, domain.DraftFromListing(nil))
}

func TestListingDraft_Payload(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.ListingDraft
		check func(t *testing.T, payload map[string]any)
	}{
		{
			name: "trims_string_fields",
			draft: domain.ListingDraft{
				Title:        "  Vintage road bike  ",
				Description:  "\tSteel frame\n",
				Price:        "250",
				Category:     "sports",
				Condition:    "used",
				ContactPhone: " +15550100 ",
			},
			check: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, "Vintage road bike", payload["title"])
				assert.Equal(t, "Steel frame", payload["description"])
				assert.Equal(t, "+15550100", payload["contact_phone"])
			},
		},
		{
			name:  "empty_price_sent_as_null",
			draft: domain.ListingDraft{Title: "Bike", Price: ""},
			check: func(t *testing.T, payload map[string]any) {
				assert.Nil(t, payload["price"])
			},
		},
		{
			name:  "whitespace_price_sent_as_null",
			draft: domain.ListingDraft{Title: "Bike", Price: "   "},
			check: func(t *testing.T, payload map[string]any) {
				assert.Nil(t, payload["price"])
			},
		},
		{
			name:  "unparseable_price_sent_as_null",
			draft: domain.ListingDraft{Title: "Bike", Price: "about 250"},
			check: func(t *testing.T, payload map[string]any) {
				assert.Nil(t, payload["price"])
			},
		},
		{
			name:  "valid_price_coerced_to_decimal",
			draft: domain.ListingDraft{Title: "Bike", Price: " 249.50 "},
			check: func(t *testing.T, payload map[string]any) {
				price, ok := payload["price"].(decimal.Decimal)
				require.True(t, ok)
				assert.True(t, price.Equal(decimal.RequireFromString("249.50")))
			},
		},
		{
			name:  "category_and_condition_passed_through",
			draft: domain.ListingDraft{Category: "electronics", Condition: "new"},
			check: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, "electronics", payload["category"])
				assert.Equal(t, "new", payload["condition"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.draft.Payload()
			require.Contains(t, payload, "price")
			tt.check(t, payload)
		})
	}
}
