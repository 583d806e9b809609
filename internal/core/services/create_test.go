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

type createFixture struct {
	controller *services.CreateController
	listings   *mocks.MockListingAPI
	meta       *mocks.MockMetaAPI
	navigated  []string
}

func newCreateFixture(t *testing.T) *createFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &createFixture{
		listings: mocks.NewMockListingAPI(ctrl),
		meta:     mocks.NewMockMetaAPI(ctrl),
	}
	nav := ports.NavigatorFunc(func(path string) { f.navigated = append(f.navigated, path) })
	f.controller = services.NewCreateController(f.listings, f.meta, nav, helpers.TestLogger())
	return f
}

func TestCreateController_Load(t *testing.T) {
	t.Run("defaults_draft_to_first_options", func(t *testing.T) {
		f := newCreateFixture(t)

		f.meta.EXPECT().Categories(gomock.Any()).Return(helpers.CreateTestCategories(), nil)
		f.meta.EXPECT().Conditions(gomock.Any()).Return(helpers.CreateTestConditions(), nil)

		f.controller.Load(context.Background())

		draft := f.controller.Draft()
		assert.Equal(t, "electronics", draft.Category)
		assert.Equal(t, "new", draft.Condition)
	})

	t.Run("keeps_existing_draft_values", func(t *testing.T) {
		f := newCreateFixture(t)
		f.controller.SetDraft(domain.ListingDraft{Category: "sports", Condition: "used"})

		f.meta.EXPECT().Categories(gomock.Any()).Return(helpers.CreateTestCategories(), nil)
		f.meta.EXPECT().Conditions(gomock.Any()).Return(helpers.CreateTestConditions(), nil)

		f.controller.Load(context.Background())

		draft := f.controller.Draft()
		assert.Equal(t, "sports", draft.Category)
		assert.Equal(t, "used", draft.Condition)
	})

	t.Run("meta_failure_leaves_form_usable", func(t *testing.T) {
		f := newCreateFixture(t)

		f.meta.EXPECT().Categories(gomock.Any()).Return(nil, errors.New("meta down"))
		f.meta.EXPECT().Conditions(gomock.Any()).Return(nil, errors.New("meta down"))

		f.controller.Load(context.Background())

		assert.Empty(t, f.controller.Categories())
		assert.Empty(t, f.controller.Conditions())
		assert.Empty(t, f.controller.FormError())
	})
}

func TestCreateController_Submit(t *testing.T) {
	t.Run("creates_and_navigates_to_detail", func(t *testing.T) {
		f := newCreateFixture(t)
		f.controller.SetDraft(domain.ListingDraft{
			Title:     "  Vintage road bike ",
			Price:     "250",
			Category:  "sports",
			Condition: "used",
		})

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload map[string]any) (*domain.Listing, error) {
				assert.Equal(t, "Vintage road bike", payload["title"])
				return helpers.CreateTestListing(), nil
			})

		assert.True(t, f.controller.Submit(context.Background()))
		assert.Equal(t, []string{"/ads/42"}, f.navigated)
		assert.Empty(t, f.controller.FormError())
		assert.False(t, f.controller.Submitting())
	})

	t.Run("validation_failure_maps_field_errors", func(t *testing.T) {
		f := newCreateFixture(t)

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, &domain.APIError{
				Status: 400,
				Fields: map[string]string{
					"title": "this field is required",
					"price": "a valid number is required",
				},
			})

		assert.False(t, f.controller.Submit(context.Background()))
		assert.Equal(t, "this field is required", f.controller.FieldError("title"))
		assert.Equal(t, "a valid number is required", f.controller.FieldError("price"))
		assert.Empty(t, f.controller.FieldError("description"))
		assert.Empty(t, f.navigated)
	})

	t.Run("detail_shown_as_form_error", func(t *testing.T) {
		f := newCreateFixture(t)

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, &domain.APIError{Status: 403, Detail: "authentication required"})

		assert.False(t, f.controller.Submit(context.Background()))
		assert.Equal(t, "authentication required", f.controller.FormError())
	})

	t.Run("network_failure_shows_generic_message", func(t *testing.T) {
		f := newCreateFixture(t)

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		assert.False(t, f.controller.Submit(context.Background()))
		assert.Equal(t, domain.GenericFailureMessage, f.controller.FormError())
	})

	t.Run("response_without_id_is_rejected", func(t *testing.T) {
		f := newCreateFixture(t)

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&domain.Listing{}, nil)

		assert.False(t, f.controller.Submit(context.Background()))
		assert.Equal(t, "unexpected server response", f.controller.FormError())
		assert.Empty(t, f.navigated)
	})

	t.Run("resubmit_clears_previous_errors", func(t *testing.T) {
		f := newCreateFixture(t)

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, &domain.APIError{
				Status: 400,
				Fields: map[string]string{"title": "this field is required"},
			})
		require.False(t, f.controller.Submit(context.Background()))
		require.NotEmpty(t, f.controller.FieldError("title"))

		f.listings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(helpers.CreateTestListing(), nil)
		assert.True(t, f.controller.Submit(context.Background()))
		assert.Empty(t, f.controller.FieldError("title"))
		assert.Empty(t, f.controller.FormError())
	})
}
