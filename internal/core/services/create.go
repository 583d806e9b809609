// internal/core/services/create.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// CreateController drives the new-listing form: it loads the reference
// lists, normalizes the draft on submit and maps validation failures onto
// form and field messages. On success it navigates to the created
// listing's detail view.
type CreateController struct {
	listings ports.ListingAPI
	meta     ports.MetaAPI
	nav      ports.Navigator
	logger   *slog.Logger

	mu          sync.Mutex
	categories  domain.ReferenceList
	conditions  domain.ReferenceList
	draft       domain.ListingDraft
	fieldErrors map[string]string
	formError   string
	submitting  bool
}

// NewCreateController creates a create controller.
func NewCreateController(listings ports.ListingAPI, meta ports.MetaAPI, nav ports.Navigator, logger *slog.Logger) *CreateController {
	return &CreateController{
		listings: listings,
		meta:     meta,
		nav:      nav,
		logger:   logger.With(slog.String("component", "listing_create")),
	}
}

// Load fetches the reference lists and defaults the draft's category and
// condition to the first option of each. A meta failure is logged and does
// not block the form; the selects are just limited.
func (c *CreateController) Load(ctx context.Context) {
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

	if catErr != nil {
		c.logger.Warn("failed to load categories", slog.String("error", catErr.Error()))
	}
	if condErr != nil {
		c.logger.Warn("failed to load conditions", slog.String("error", condErr.Error()))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if catErr == nil {
		c.categories = cats
		if c.draft.Category == "" && len(cats) > 0 {
			c.draft.Category = cats[0].Key
		}
	}
	if condErr == nil {
		c.conditions = conds
		if c.draft.Condition == "" && len(conds) > 0 {
			c.draft.Condition = conds[0].Key
		}
	}
}

// SetDraft replaces the form values.
func (c *CreateController) SetDraft(d domain.ListingDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

// Draft returns a copy of the current form values.
func (c *CreateController) Draft() domain.ListingDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit normalizes the draft and creates the listing. A structured
// validation failure maps onto field messages and the form-level banner; a
// network failure shows the generic message. On success the controller
// navigates to the new listing's detail view. Returns true on success.
func (c *CreateController) Submit(ctx context.Context) bool {
	c.mu.Lock()
	draft := c.draft
	c.submitting = true
	c.fieldErrors = nil
	c.formError = ""
	c.mu.Unlock()

	created, err := c.listings.Create(ctx, draft.Payload())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.applyError(err)
		return false
	}
	if created == nil || created.ID == 0 {
		c.formError = "unexpected server response"
		return false
	}
	c.logger.Info("listing created", slog.Int64("id", created.ID))
	c.nav.Navigate(fmt.Sprintf("/ads/%d", created.ID))
	return true
}

func (c *CreateController) applyError(err error) {
	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		c.formError = domain.GenericFailureMessage
		c.logger.Warn("create failed", slog.String("error", err.Error()))
		return
	}
	c.fieldErrors = apiErr.Fields
	c.formError = apiErr.Detail
	if c.formError == "" && len(c.fieldErrors) == 0 {
		c.formError = domain.GenericFailureMessage
	}
	c.logger.Warn("create rejected",
		slog.Int("status", apiErr.Status),
		slog.Int("field_errors", len(apiErr.Fields)))
}

// FieldError returns the validation message attached to one input, or "".
func (c *CreateController) FieldError(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors[name]
}

// FormError returns the form-level error message, or "".
func (c *CreateController) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formError
}

// Submitting reports whether a create request is in flight.
func (c *CreateController) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Categories returns the cached category reference list.
func (c *CreateController) Categories() domain.ReferenceList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categories
}

// Conditions returns the cached condition reference list.
func (c *CreateController) Conditions() domain.ReferenceList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conditions
}
