// internal/core/services/profile.go
package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// ProfileForm holds the editable profile fields as entered. Password is
// only sent when non-empty.
type ProfileForm struct {
	Email    string
	Phone    string
	Password string
}

// ProfileController loads the current member, updates the profile, and
// lists the member's own ads (the first page filtered by author).
type ProfileController struct {
	profile  ports.ProfileAPI
	listings ports.ListingAPI
	confirm  ports.Confirmer
	session  *Session
	logger   *slog.Logger

	mu         sync.Mutex
	phase      FlowPhase
	member     *domain.Member
	form       ProfileForm
	saving     bool
	errMsg     string
	successMsg string
	ownAds     []domain.Listing
	ownAdsErr  string
}

// NewProfileController creates a profile controller.
func NewProfileController(profile ports.ProfileAPI, listings ports.ListingAPI, confirm ports.Confirmer, session *Session, logger *slog.Logger) *ProfileController {
	return &ProfileController{
		profile:  profile,
		listings: listings,
		confirm:  confirm,
		session:  session,
		logger:   logger.With(slog.String("component", "profile")),
	}
}

// Load fetches the member, pre-fills the form and loads the member's own
// ads. A failure to list ads does not block the profile itself.
func (c *ProfileController) Load(ctx context.Context) {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.errMsg = ""
	c.mu.Unlock()

	member, err := c.profile.Me(ctx)

	c.mu.Lock()
	if err != nil {
		c.phase = PhaseError
		c.errMsg = domain.ErrorMessage(err)
		c.mu.Unlock()
		c.logger.Warn("failed to load profile", slog.String("error", err.Error()))
		return
	}
	c.member = member
	c.form = ProfileForm{Email: member.Email, Phone: member.Phone}
	c.phase = PhaseReady
	c.mu.Unlock()

	c.session.SetMember(member)
	c.loadOwnAds(ctx, member)
}

func (c *ProfileController) loadOwnAds(ctx context.Context, member *domain.Member) {
	page, err := c.listings.List(ctx, map[string]string{})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.ownAdsErr = domain.ErrorMessage(err)
		c.ownAds = nil
		return
	}
	own := make([]domain.Listing, 0)
	for _, l := range page.Results {
		if l.AuthorID() == member.ID {
			own = append(own, l)
		}
	}
	c.ownAds = own
	c.ownAdsErr = ""
}

// SetForm replaces the form values.
func (c *ProfileController) SetForm(f ProfileForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// Form returns a copy of the current form values.
func (c *ProfileController) Form() ProfileForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Save updates the profile. Email and phone are trimmed and sent as null
// when empty; the password is included only when non-empty and is cleared
// from the form afterwards. Returns true on success.
func (c *ProfileController) Save(ctx context.Context) bool {
	c.mu.Lock()
	if c.member == nil {
		c.mu.Unlock()
		return false
	}
	form := c.form
	c.saving = true
	c.errMsg = ""
	c.successMsg = ""
	c.mu.Unlock()

	payload := map[string]any{
		"email": nil,
		"phone": nil,
	}
	if v := strings.TrimSpace(form.Email); v != "" {
		payload["email"] = v
	}
	if v := strings.TrimSpace(form.Phone); v != "" {
		payload["phone"] = v
	}
	if pwd := strings.TrimSpace(form.Password); pwd != "" {
		payload["password"] = pwd
	}

	updated, err := c.profile.Update(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		c.errMsg = domain.ErrorMessage(err)
		c.logger.Warn("profile update failed", slog.String("error", err.Error()))
		return false
	}
	c.member = updated
	c.successMsg = "profile updated"
	c.form.Password = ""
	c.logger.Info("profile updated", slog.Int64("member_id", updated.ID))
	return true
}

// DeleteOwnAd removes one of the member's own listings after confirmation
// and drops it from the cached list. Returns true when deleted.
func (c *ProfileController) DeleteOwnAd(ctx context.Context, id int64) bool {
	if id == 0 {
		return false
	}
	if !c.confirm.Confirm("Delete this listing?") {
		return false
	}

	err := c.listings.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.ownAdsErr = domain.ErrorMessage(err)
		return false
	}
	kept := c.ownAds[:0]
	for _, l := range c.ownAds {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.ownAds = kept
	return true
}

// Member returns the loaded member, or nil.
func (c *ProfileController) Member() *domain.Member {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.member
}

// Phase returns the controller lifecycle phase.
func (c *ProfileController) Phase() FlowPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ErrorMessage returns the current error message, or "".
func (c *ProfileController) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// SuccessMessage returns the last success message, or "".
func (c *ProfileController) SuccessMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.successMsg
}

// Saving reports whether an update request is in flight.
func (c *ProfileController) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// OwnAds returns the member's own listings from the first result page.
func (c *ProfileController) OwnAds() []domain.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ownAds
}

// OwnAdsError returns the error from the own-ads fetch, or "".
func (c *ProfileController) OwnAdsError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ownAdsErr
}
