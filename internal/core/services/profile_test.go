package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
	"github.com/easyboard/easyboard-go/internal/core/services"
	"github.com/easyboard/easyboard-go/test/helpers"
	"github.com/easyboard/easyboard-go/test/mocks"
)

type profileFixture struct {
	controller *services.ProfileController
	profile    *mocks.MockProfileAPI
	listings   *mocks.MockListingAPI
	session    *services.Session
	confirm    bool
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &profileFixture{
		profile:  mocks.NewMockProfileAPI(ctrl),
		listings: mocks.NewMockListingAPI(ctrl),
		confirm:  true,
	}

	store := mocks.NewMockTokenStore(ctrl)
	changes := make(chan string)
	store.EXPECT().Load(gomock.Any()).Return("stored-token", nil)
	store.EXPECT().Changes().Return((<-chan string)(changes)).AnyTimes()
	f.session = services.NewSession(context.Background(), store, helpers.TestLogger())
	t.Cleanup(f.session.Close)

	confirm := ports.ConfirmerFunc(func(string) bool { return f.confirm })
	f.controller = services.NewProfileController(f.profile, f.listings, confirm, f.session, helpers.TestLogger())
	return f
}

func (f *profileFixture) load(t *testing.T, page *domain.ResultPage) *domain.Member {
	t.Helper()
	member := helpers.CreateTestMember()
	f.profile.EXPECT().Me(gomock.Any()).Return(member, nil)
	f.listings.EXPECT().List(gomock.Any(), map[string]string{}).Return(page, nil)
	f.controller.Load(context.Background())
	require.Equal(t, services.PhaseReady, f.controller.Phase())
	return member
}

func TestProfileController_Load(t *testing.T) {
	t.Run("prefills_form_and_caches_member", func(t *testing.T) {
		f := newProfileFixture(t)
		member := f.load(t, helpers.CreateTestPage())

		form := f.controller.Form()
		assert.Equal(t, member.Email, form.Email)
		assert.Equal(t, member.Phone, form.Phone)
		assert.Empty(t, form.Password)
		assert.Equal(t, member, f.session.Member())
	})

	t.Run("own_ads_filtered_by_author", func(t *testing.T) {
		f := newProfileFixture(t)
		page := helpers.CreateTestPage(
			*helpers.CreateTestListing(func(l *domain.Listing) { l.ID = 1 }),
			*helpers.CreateTestListing(func(l *domain.Listing) {
				l.ID = 2
				l.Author = &domain.Author{ID: 5, Username: "somebody"}
			}),
			*helpers.CreateTestListing(func(l *domain.Listing) { l.ID = 3 }),
			*helpers.CreateTestListing(func(l *domain.Listing) {
				l.ID = 4
				l.Author = nil
			}),
		)
		f.load(t, page)

		own := f.controller.OwnAds()
		require.Len(t, own, 2)
		assert.EqualValues(t, 1, own[0].ID)
		assert.EqualValues(t, 3, own[1].ID)
		assert.Empty(t, f.controller.OwnAdsError())
	})

	t.Run("profile_fetch_failure_is_fatal", func(t *testing.T) {
		f := newProfileFixture(t)

		f.profile.EXPECT().Me(gomock.Any()).
			Return(nil, &domain.APIError{Status: 401, Detail: "authentication required"})

		f.controller.Load(context.Background())

		assert.Equal(t, services.PhaseError, f.controller.Phase())
		assert.Equal(t, "authentication required", f.controller.ErrorMessage())
	})

	t.Run("own_ads_failure_does_not_block_profile", func(t *testing.T) {
		f := newProfileFixture(t)

		f.profile.EXPECT().Me(gomock.Any()).Return(helpers.CreateTestMember(), nil)
		f.listings.EXPECT().List(gomock.Any(), map[string]string{}).
			Return(nil, errors.New("connection refused"))

		f.controller.Load(context.Background())

		assert.Equal(t, services.PhaseReady, f.controller.Phase())
		assert.Equal(t, domain.GenericFailureMessage, f.controller.OwnAdsError())
		assert.Empty(t, f.controller.OwnAds())
	})
}

func TestProfileController_Save(t *testing.T) {
	t.Run("trims_and_nulls_empty_optionals", func(t *testing.T) {
		f := newProfileFixture(t)
		f.load(t, helpers.CreateTestPage())

		f.controller.SetForm(services.ProfileForm{Email: " new@example.com ", Phone: ""})

		f.profile.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload map[string]any) (*domain.Member, error) {
				assert.Equal(t, "new@example.com", payload["email"])
				assert.Nil(t, payload["phone"])
				assert.NotContains(t, payload, "password")
				return helpers.CreateTestMember(func(m *domain.Member) {
					m.Email = "new@example.com"
					m.Phone = ""
				}), nil
			})

		assert.True(t, f.controller.Save(context.Background()))
		assert.Equal(t, "profile updated", f.controller.SuccessMessage())
		assert.Equal(t, "new@example.com", f.controller.Member().Email)
	})

	t.Run("password_sent_only_when_set_and_cleared_after", func(t *testing.T) {
		f := newProfileFixture(t)
		f.load(t, helpers.CreateTestPage())

		form := f.controller.Form()
		form.Password = "new-secret"
		f.controller.SetForm(form)

		f.profile.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload map[string]any) (*domain.Member, error) {
				assert.Equal(t, "new-secret", payload["password"])
				return helpers.CreateTestMember(), nil
			})

		assert.True(t, f.controller.Save(context.Background()))
		assert.Empty(t, f.controller.Form().Password)
	})

	t.Run("failure_keeps_form_with_message", func(t *testing.T) {
		f := newProfileFixture(t)
		f.load(t, helpers.CreateTestPage())
		f.controller.SetForm(services.ProfileForm{Email: "bad"})

		f.profile.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil, &domain.APIError{Status: 400, Detail: "enter a valid email address"})

		assert.False(t, f.controller.Save(context.Background()))
		assert.Equal(t, "enter a valid email address", f.controller.ErrorMessage())
		assert.Empty(t, f.controller.SuccessMessage())
		assert.Equal(t, "bad", f.controller.Form().Email)
	})

	t.Run("nothing_loaded", func(t *testing.T) {
		f := newProfileFixture(t)
		assert.False(t, f.controller.Save(context.Background()))
	})
}

func TestProfileController_DeleteOwnAd(t *testing.T) {
	ownPage := func() *domain.ResultPage {
		return helpers.CreateTestPage(
			*helpers.CreateTestListing(func(l *domain.Listing) { l.ID = 1 }),
			*helpers.CreateTestListing(func(l *domain.Listing) { l.ID = 3 }),
		)
	}

	t.Run("deletes_and_drops_from_cache", func(t *testing.T) {
		f := newProfileFixture(t)
		f.load(t, ownPage())

		f.listings.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		assert.True(t, f.controller.DeleteOwnAd(context.Background(), 1))

		own := f.controller.OwnAds()
		require.Len(t, own, 1)
		assert.EqualValues(t, 3, own[0].ID)
	})

	t.Run("declined_confirmation_skips_request", func(t *testing.T) {
		f := newProfileFixture(t)
		f.load(t, ownPage())
		f.confirm = false

		assert.False(t, f.controller.DeleteOwnAd(context.Background(), 1))
		assert.Len(t, f.controller.OwnAds(), 2)
	})

	t.Run("failure_keeps_cache_with_message", func(t *testing.T) {
		f := newProfileFixture(t)
		f.load(t, ownPage())

		f.listings.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("boom"))

		assert.False(t, f.controller.DeleteOwnAd(context.Background(), 1))
		assert.Len(t, f.controller.OwnAds(), 2)
		assert.Equal(t, domain.GenericFailureMessage, f.controller.OwnAdsError())
	})

	t.Run("zero_id_is_ignored", func(t *testing.T) {
		f := newProfileFixture(t)
		assert.False(t, f.controller.DeleteOwnAd(context.Background(), 0))
	})
}
