// internal/core/domain/page.go
package domain

// ResultPage is one page of listings plus pagination cursors and total count.
// Next and Previous are opaque URLs; only their query strings are ever
// interpreted by the client.
type ResultPage struct {
	Count    int       `json:"count"`
	Next     string    `json:"next"`
	Previous string    `json:"previous"`
	Results  []Listing `json:"results"`
}

// EmptyPage returns the zero result page used after a failed fetch.
func EmptyPage() ResultPage {
	return ResultPage{Results: []Listing{}}
}

// HasNext reports whether a next page cursor is present.
func (p ResultPage) HasNext() bool { return p.Next != "" }

// HasPrevious reports whether a previous page cursor is present.
func (p ResultPage) HasPrevious() bool { return p.Previous != "" }

// ReferenceItem is one entry of a reference list (category or condition).
type ReferenceItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ReferenceList is an ordered reference list fetched from the meta endpoints.
type ReferenceList []ReferenceItem

// LabelFor resolves a reference key to its label. Unknown keys fall back to
// the raw key so a failed or partial meta load never blocks rendering.
func (r ReferenceList) LabelFor(key string) string {
	for _, item := range r {
		if item.Key == key {
			return item.Label
		}
	}
	return key
}
