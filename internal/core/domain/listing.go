// internal/core/domain/listing.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Author identifies the member who published a listing.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Listing represents a single classified ad as returned by the API.
// Category and Condition are reference keys; labels are resolved client-side
// against the reference lists.
type Listing struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Condition    string          `json:"condition"`
	ContactPhone string          `json:"contact_phone"`
	ContactEmail string          `json:"contact_email,omitempty"`
	Author       *Author         `json:"author,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AuthorID returns the listing author's id, or 0 when the author is absent.
func (l *Listing) AuthorID() int64 {
	if l == nil || l.Author == nil {
		return 0
	}
	return l.Author.ID
}

// Member represents the authenticated account.
type Member struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ListingDraft holds listing form input exactly as entered. All fields are
// strings; Payload performs the normalization applied on submit.
type ListingDraft struct {
	Title        string
	Description  string
	Price        string
	Category     string
	Condition    string
	ContactPhone string
	ContactEmail string
}

// DraftFromListing pre-fills a draft from an existing listing for editing.
func DraftFromListing(l *Listing) ListingDraft {
	if l == nil {
		return ListingDraft{}
	}
	return ListingDraft{
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price.String(),
		Category:     l.Category,
		Condition:    l.Condition,
		ContactPhone: l.ContactPhone,
		ContactEmail: l.ContactEmail,
	}
}

// Payload normalizes the draft into the create/update request body: string
// fields are trimmed and price is coerced to a decimal. An empty or
// unparseable price is sent as null, which the API rejects with a field
// error; the server stays the source of truth for validation.
func (d ListingDraft) Payload() map[string]any {
	payload := map[string]any{
		"title":         strings.TrimSpace(d.Title),
		"description":   strings.TrimSpace(d.Description),
		"category":      d.Category,
		"condition":     d.Condition,
		"contact_phone": strings.TrimSpace(d.ContactPhone),
		"contact_email": strings.TrimSpace(d.ContactEmail),
	}
	payload["price"] = nil
	if p := strings.TrimSpace(d.Price); p != "" {
		if dec, err := decimal.NewFromString(p); err == nil {
			payload["price"] = dec
		}
	}
	return payload
}
