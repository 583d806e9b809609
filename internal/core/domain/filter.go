// internal/core/domain/filter.go
package domain

import "fmt"

// Ordering values accepted by the listings endpoint.
const (
	OrderingNewestFirst = "-created_at"
	OrderingOldestFirst = "created_at"
)

// Filter field names as sent on the wire.
const (
	FieldCategory  = "category"
	FieldCondition = "condition"
	FieldMinPrice  = "min_price"
	FieldMaxPrice  = "max_price"
	FieldQuery     = "q"
	FieldOrdering  = "ordering"
	FieldDateFrom  = "date_from"
	FieldDateTo    = "date_to"
)

// FilterSet holds the current search criteria. Zero values mean "not set"
// and are omitted from outgoing requests.
type FilterSet struct {
	Category  string
	Condition string
	MinPrice  string
	MaxPrice  string
	Query     string
	Ordering  string
	DateFrom  string
	DateTo    string
}

// DefaultFilters returns the documented defaults: everything unset except
// ordering, which is newest-first.
func DefaultFilters() FilterSet {
	return FilterSet{Ordering: OrderingNewestFirst}
}

// SetField updates exactly one field by its wire name, leaving the others
// untouched. Unknown field names and invalid ordering values are rejected.
func (f *FilterSet) SetField(name, value string) error {
	switch name {
	case FieldCategory:
		f.Category = value
	case FieldCondition:
		f.Condition = value
	case FieldMinPrice:
		f.MinPrice = value
	case FieldMaxPrice:
		f.MaxPrice = value
	case FieldQuery:
		f.Query = value
	case FieldOrdering:
		if value != OrderingNewestFirst && value != OrderingOldestFirst {
			return fmt.Errorf("invalid ordering %q", value)
		}
		f.Ordering = value
	case FieldDateFrom:
		f.DateFrom = value
	case FieldDateTo:
		f.DateTo = value
	default:
		return fmt.Errorf("unknown filter field %q", name)
	}
	return nil
}

// QueryParams converts the filter set into request query parameters.
// Unset fields are omitted, never sent as empty strings.
func (f FilterSet) QueryParams() map[string]string {
	params := make(map[string]string, 8)
	put := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	put(FieldCategory, f.Category)
	put(FieldCondition, f.Condition)
	put(FieldMinPrice, f.MinPrice)
	put(FieldMaxPrice, f.MaxPrice)
	put(FieldQuery, f.Query)
	put(FieldOrdering, f.Ordering)
	put(FieldDateFrom, f.DateFrom)
	put(FieldDateTo, f.DateTo)
	return params
}
