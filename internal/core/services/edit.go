// internal/core/services/edit.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// EditController drives the edit form of an existing listing. Ownership is
// checked against the current member; a non-owner only ever sees the
// denial state, never the form. Submission and deletion follow the same
// normalization and error-mapping rules as creation.
type EditController struct {
	listings ports.ListingAPI
	meta     ports.MetaAPI
	profile  ports.ProfileAPI
	nav      ports.Navigator
	confirm  ports.Confirmer
	logger   *slog.Logger

	mu          sync.Mutex
	phase       FlowPhase
	listing     *domain.Listing
	member      *domain.Member
	categories  domain.ReferenceList
	conditions  domain.ReferenceList
	draft       domain.ListingDraft
	fieldErrors map[string]string
	formError   string
	saving      bool
	deleting    bool
}

// NewEditController creates an edit controller.
func NewEditController(listings ports.ListingAPI, meta ports.MetaAPI, profile ports.ProfileAPI, nav ports.Navigator, confirm ports.Confirmer, logger *slog.Logger) *EditController {
	return &EditController{
		listings: listings,
		meta:     meta,
		profile:  profile,
		nav:      nav,
		confirm:  confirm,
		logger:   logger.With(slog.String("component", "listing_edit")),
	}
}

// Load fetches the listing, the reference lists and the current member
// concurrently, then pre-fills the draft from the listing. Only the
// listing fetch is fatal.
func (c *EditController) Load(ctx context.Context, id int64) {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.formError = ""
	c.fieldErrors = nil
	c.mu.Unlock()

	var wg sync.WaitGroup
	var (
		listing         *domain.Listing
		member          *domain.Member
		cats, conds     domain.ReferenceList
		listingErr      error
		catErr, condErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		listing, listingErr = c.listings.Get(ctx, id)
	}()
	go func() {
		defer wg.Done()
		cats, catErr = c.meta.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		conds, condErr = c.meta.Conditions(ctx)
	}()
	go func() {
		defer wg.Done()
		member, _ = c.profile.Me(ctx)
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
	c.member = member
	if catErr == nil {
		c.categories = cats
	}
	if condErr == nil {
		c.conditions = conds
	}
	if listingErr != nil {
		c.phase = PhaseError
		c.formError = "failed to load listing"
		c.logger.Warn("failed to load listing",
			slog.Int64("id", id),
			slog.String("error", listingErr.Error()))
		return
	}
	c.listing = listing
	c.draft = domain.DraftFromListing(listing)
	c.phase = PhaseReady
}

// IsOwner reports whether the current member authored the loaded listing.
func (c *EditController) IsOwner() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return isOwner(c.member, c.listing)
}

// SetDraft replaces the form values.
func (c *EditController) SetDraft(d domain.ListingDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

// Draft returns a copy of the current form values.
func (c *EditController) Draft() domain.ListingDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit PATCHes the normalized draft. Non-owners are rejected without a
// request. On success the controller navigates to the listing's detail
// view. Returns true on success.
func (c *EditController) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if !isOwner(c.member, c.listing) {
		c.formError = "only the author can edit this listing"
		c.mu.Unlock()
		return false
	}
	id := c.listing.ID
	draft := c.draft
	c.saving = true
	c.fieldErrors = nil
	c.formError = ""
	c.mu.Unlock()

	updated, err := c.listings.Update(ctx, id, draft.Payload())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		c.applyError(err)
		return false
	}
	if updated != nil {
		c.listing = updated
	}
	c.logger.Info("listing updated", slog.Int64("id", id))
	c.nav.Navigate(fmt.Sprintf("/ads/%d", id))
	return true
}

// Delete removes the listing after an explicit confirmation and navigates
// home on success. Returns true when the listing was deleted.
func (c *EditController) Delete(ctx context.Context) bool {
	c.mu.Lock()
	if !isOwner(c.member, c.listing) {
		c.formError = "only the author can delete this listing"
		c.mu.Unlock()
		return false
	}
	id := c.listing.ID
	c.mu.Unlock()

	if !c.confirm.Confirm("Delete this listing?") {
		return false
	}

	c.mu.Lock()
	c.deleting = true
	c.mu.Unlock()

	err := c.listings.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleting = false
	if err != nil {
		c.formError = "failed to delete listing"
		c.logger.Warn("delete failed",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return false
	}
	c.logger.Info("listing deleted", slog.Int64("id", id))
	c.nav.Navigate("/")
	return true
}

func (c *EditController) applyError(err error) {
	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		c.formError = domain.GenericFailureMessage
		c.logger.Warn("update failed", slog.String("error", err.Error()))
		return
	}
	c.fieldErrors = apiErr.Fields
	c.formError = apiErr.Detail
	if c.formError == "" && len(c.fieldErrors) == 0 {
		c.formError = domain.GenericFailureMessage
	}
	c.logger.Warn("update rejected",
		slog.Int("status", apiErr.Status),
		slog.Int("field_errors", len(apiErr.Fields)))
}

// Listing returns the loaded listing, or nil.
func (c *EditController) Listing() *domain.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listing
}

// Phase returns the controller lifecycle phase.
func (c *EditController) Phase() FlowPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// FieldError returns the validation message attached to one input, or "".
func (c *EditController) FieldError(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors[name]
}

// FormError returns the form-level error message, or "".
func (c *EditController) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formError
}

// Saving reports whether an update request is in flight.
func (c *EditController) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// Deleting reports whether a delete request is in flight.
func (c *EditController) Deleting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

// Categories returns the cached category reference list.
func (c *EditController) Categories() domain.ReferenceList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categories
}

// Conditions returns the cached condition reference list.
func (c *EditController) Conditions() domain.ReferenceList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conditions
}
