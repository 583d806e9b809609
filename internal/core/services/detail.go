// internal/core/services/detail.go
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// DetailController is the read view of a single listing: it loads the
// listing, the reference lists and the current member in parallel, and
// gates edit/delete on ownership.
type DetailController struct {
	listings ports.ListingAPI
	meta     ports.MetaAPI
	profile  ports.ProfileAPI
	nav      ports.Navigator
	confirm  ports.Confirmer
	logger   *slog.Logger

	mu         sync.Mutex
	phase      FlowPhase
	listing    *domain.Listing
	member     *domain.Member
	categories domain.ReferenceList
	conditions domain.ReferenceList
	errMsg     string
	deleting   bool
}

// NewDetailController creates a detail controller.
func NewDetailController(listings ports.ListingAPI, meta ports.MetaAPI, profile ports.ProfileAPI, nav ports.Navigator, confirm ports.Confirmer, logger *slog.Logger) *DetailController {
	return &DetailController{
		listings: listings,
		meta:     meta,
		profile:  profile,
		nav:      nav,
		confirm:  confirm,
		logger:   logger.With(slog.String("component", "listing_detail")),
	}
}

// Load fetches the listing, reference lists and current member in parallel.
// Only the listing fetch is fatal; meta failures degrade labels to raw keys
// and a missing member simply means no owner actions.
func (c *DetailController) Load(ctx context.Context, id int64) {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.errMsg = ""
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
		c.errMsg = "listing not found"
		c.logger.Warn("failed to load listing",
			slog.Int64("id", id),
			slog.String("error", listingErr.Error()))
		return
	}
	c.listing = listing
	c.phase = PhaseReady
}

// IsOwner reports whether the current member authored the loaded listing.
// Either side missing means not owner.
func (c *DetailController) IsOwner() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return isOwner(c.member, c.listing)
}

// Delete removes the listing after an explicit confirmation and navigates
// home on success. On failure the view stays in place with an error
// message. Returns true when the listing was deleted.
func (c *DetailController) Delete(ctx context.Context) bool {
	c.mu.Lock()
	listing := c.listing
	c.mu.Unlock()
	if listing == nil {
		return false
	}
	if !c.confirm.Confirm("Delete this listing?") {
		return false
	}

	c.mu.Lock()
	c.deleting = true
	c.mu.Unlock()

	err := c.listings.Delete(ctx, listing.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleting = false
	if err != nil {
		c.errMsg = "failed to delete listing"
		c.logger.Warn("delete failed",
			slog.Int64("id", listing.ID),
			slog.String("error", err.Error()))
		return false
	}
	c.nav.Navigate("/")
	return true
}

// Listing returns the loaded listing, or nil.
func (c *DetailController) Listing() *domain.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listing
}

// Member returns the current member, or nil when unauthenticated.
func (c *DetailController) Member() *domain.Member {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.member
}

// Phase returns the controller lifecycle phase.
func (c *DetailController) Phase() FlowPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ErrorMessage returns the current error message, or "".
func (c *DetailController) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Deleting reports whether a delete request is in flight.
func (c *DetailController) Deleting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

// CategoryLabel resolves a category key against the cached reference list.
func (c *DetailController) CategoryLabel(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categories.LabelFor(key)
}

// ConditionLabel resolves a condition key against the cached reference list.
func (c *DetailController) ConditionLabel(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conditions.LabelFor(key)
}

// isOwner is the ownership check shared by the detail and edit flows:
// strict id equality, absent member or listing means not owner.
func isOwner(member *domain.Member, listing *domain.Listing) bool {
	if member == nil || listing == nil || listing.Author == nil {
		return false
	}
	return member.ID == listing.Author.ID
}
