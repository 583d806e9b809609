// internal/core/services/search.go
package services

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// SearchController drives the listings search: it builds query parameters
// from the filter state, calls the list endpoint, and owns the result page
// plus loading/error flags. Responses are guarded by a monotonic request
// sequence so a slow, stale response never overwrites a fresher one.
type SearchController struct {
	listings ports.ListingAPI
	meta     ports.MetaAPI
	logger   *slog.Logger
	pageSize int

	filters *FilterState
	seq     atomic.Uint64

	mu         sync.Mutex
	page       domain.ResultPage
	loading    bool
	errMsg     string
	categories domain.ReferenceList
	conditions domain.ReferenceList
}

// NewSearchController creates a search controller. A positive pageSize is
// sent as the page_size parameter on every search; zero leaves the server
// default. Debounced searches fired by filter edits run against
// context.Background; callers that need cancellation should use Search
// directly.
func NewSearchController(listings ports.ListingAPI, meta ports.MetaAPI, debounce time.Duration, pageSize int, logger *slog.Logger) *SearchController {
	c := &SearchController{
		listings: listings,
		meta:     meta,
		logger:   logger.With(slog.String("component", "search")),
		pageSize: pageSize,
		page:     domain.EmptyPage(),
	}
	c.filters = NewFilterState(debounce, func() {
		c.Search(context.Background(), nil)
	}, logger)
	return c
}

// Load performs the initial fetch: reference lists and the first page are
// loaded concurrently. A meta failure is logged and never blocks the
// listings; labels then degrade to raw keys.
func (c *SearchController) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.loadMeta(ctx)
	}()
	go func() {
		defer wg.Done()
		c.Search(ctx, nil)
	}()
	wg.Wait()
}

// Search builds query parameters from the non-empty filter fields, overlays
// extra (pagination cursors win over stale local filters), and replaces the
// result page wholesale on success. On failure the error message comes from
// the payload detail when present and the page resets to empty.
func (c *SearchController) Search(ctx context.Context, extra map[string]string) {
	gen := c.seq.Add(1)

	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	params := c.filters.Params()
	if c.pageSize > 0 {
		params["page_size"] = strconv.Itoa(c.pageSize)
	}
	for key, value := range extra {
		params[key] = value
	}

	page, err := c.listings.List(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.seq.Load() {
		c.logger.Debug("discarding stale search response", slog.Uint64("generation", gen))
		return
	}
	c.loading = false
	if err != nil {
		c.errMsg = domain.ErrorMessage(err)
		c.page = domain.EmptyPage()
		c.logger.Warn("search failed", slog.String("error", err.Error()))
		return
	}
	c.page = *page
	c.logger.Debug("search completed",
		slog.Int("count", page.Count),
		slog.Int("results", len(page.Results)))
}

// GoToPage follows a pagination cursor. An empty URL is ignored (the
// disabled-button case). The cursor's own query parameters override the
// live filter fields of the same name.
func (c *SearchController) GoToPage(ctx context.Context, pageURL string) {
	if pageURL == "" {
		return
	}
	c.Search(ctx, queryParamsFromURL(pageURL))
}

// SetFilter updates one filter field, scheduling a debounced search.
func (c *SearchController) SetFilter(name, value string) error {
	return c.filters.SetField(name, value)
}

// ApplyFilters triggers an immediate search, cancelling any pending
// debounced one.
func (c *SearchController) ApplyFilters() {
	c.filters.Apply()
}

// ResetFilters restores the filter defaults and searches immediately.
func (c *SearchController) ResetFilters() {
	c.filters.Reset()
}

// Close cancels any pending debounced search.
func (c *SearchController) Close() {
	c.filters.Stop()
}

// Filters returns a copy of the current filter set.
func (c *SearchController) Filters() domain.FilterSet {
	return c.filters.Filters()
}

// Page returns the current result page.
func (c *SearchController) Page() domain.ResultPage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Loading reports whether a search is in flight.
func (c *SearchController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// ErrorMessage returns the message of the last failed search, or "".
func (c *SearchController) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Categories returns the cached category reference list.
func (c *SearchController) Categories() domain.ReferenceList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categories
}

// Conditions returns the cached condition reference list.
func (c *SearchController) Conditions() domain.ReferenceList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conditions
}

// CategoryLabel resolves a category key, falling back to the key itself.
func (c *SearchController) CategoryLabel(key string) string {
	return c.Categories().LabelFor(key)
}

// ConditionLabel resolves a condition key, falling back to the key itself.
func (c *SearchController) ConditionLabel(key string) string {
	return c.Conditions().LabelFor(key)
}

func (c *SearchController) loadMeta(ctx context.Context) {
	var wg sync.WaitGroup
	var (
		cats, conds     domain.ReferenceList
		catErr, condErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cats, catErr = c.meta.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		conds, condErr = c.meta.Conditions(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	if catErr == nil {
		c.categories = cats
	}
	if condErr == nil {
		c.conditions = conds
	}
	c.mu.Unlock()

	if catErr != nil {
		c.logger.Warn("failed to load categories, labels fall back to raw keys",
			slog.String("error", catErr.Error()))
	}
	if condErr != nil {
		c.logger.Warn("failed to load conditions, labels fall back to raw keys",
			slog.String("error", condErr.Error()))
	}
}

// queryParamsFromURL parses the query string of an absolute or relative
// cursor URL into a flat key to value map. Unparseable URLs yield no
// parameters.
func queryParamsFromURL(raw string) map[string]string {
	params := make(map[string]string)
	u, err := url.Parse(raw)
	if err != nil {
		return params
	}
	for key, values := range u.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
