// cmd/easyboard/listings.go
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/services"
)

func (a *app) runSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("q", "", "free-text query")
	category := fs.String("category", "", "category key")
	condition := fs.String("condition", "", "condition key")
	minPrice := fs.String("min-price", "", "minimum price")
	maxPrice := fs.String("max-price", "", "maximum price")
	ordering := fs.String("ordering", domain.OrderingNewestFirst, "ordering: -created_at or created_at")
	dateFrom := fs.String("date-from", "", "created from (YYYY-MM-DD)")
	dateTo := fs.String("date-to", "", "created to (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := services.NewSearchController(a.client, a.client, a.cfg.Search.Debounce, a.cfg.Search.PageSize, a.logger)
	defer ctrl.Close()

	fields := map[string]string{
		domain.FieldQuery:     *query,
		domain.FieldCategory:  *category,
		domain.FieldCondition: *condition,
		domain.FieldMinPrice:  *minPrice,
		domain.FieldMaxPrice:  *maxPrice,
		domain.FieldOrdering:  *ordering,
		domain.FieldDateFrom:  *dateFrom,
		domain.FieldDateTo:    *dateTo,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := ctrl.SetFilter(name, value); err != nil {
			return err
		}
	}
	ctrl.Close() // drop the debounced search scheduled by the flag edits
	ctrl.Load(ctx)

	if msg := ctrl.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	renderPage(ctrl)
	return nil
}

func (a *app) runShow(ctx context.Context, args []string) error {
	id, _, err := parseListingID(args)
	if err != nil {
		return err
	}

	ctrl := services.NewDetailController(a.client, a.client, a.client, a.navigator(), a.confirmer(false), a.logger)
	ctrl.Load(ctx, id)
	if ctrl.Phase() == services.PhaseError {
		return fmt.Errorf("%s", ctrl.ErrorMessage())
	}
	renderDetail(ctrl)
	return nil
}

func (a *app) runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	draft := draftFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	ctrl := services.NewCreateController(a.client, a.client, a.navigator(), a.logger)
	ctrl.Load(ctx)
	ctrl.SetDraft(*draft)
	if !ctrl.Submit(ctx) {
		printFormErrors(ctrl.FormError(), draftFieldNames, ctrl.FieldError)
		return fmt.Errorf("listing not created")
	}
	fmt.Println("listing created")
	return nil
}

func (a *app) runEdit(ctx context.Context, args []string) error {
	id, rest, err := parseListingID(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	draft := draftFlags(fs)
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	ctrl := services.NewEditController(a.client, a.client, a.client, a.navigator(), a.confirmer(false), a.logger)
	ctrl.Load(ctx, id)
	if ctrl.Phase() == services.PhaseError {
		return fmt.Errorf("%s", ctrl.FormError())
	}
	if !ctrl.IsOwner() {
		return fmt.Errorf("you can only edit your own listings")
	}

	// Start from the loaded draft and overlay only the flags that were set.
	merged := ctrl.Draft()
	overlayDraft(&merged, fs, draft)
	ctrl.SetDraft(merged)

	if !ctrl.Submit(ctx) {
		printFormErrors(ctrl.FormError(), draftFieldNames, ctrl.FieldError)
		return fmt.Errorf("listing not updated")
	}
	fmt.Println("listing updated")
	return nil
}

func (a *app) runDelete(ctx context.Context, args []string) error {
	id, rest, err := parseListingID(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	ctrl := services.NewDetailController(a.client, a.client, a.client, a.navigator(), a.confirmer(*yes), a.logger)
	ctrl.Load(ctx, id)
	if ctrl.Phase() == services.PhaseError {
		return fmt.Errorf("%s", ctrl.ErrorMessage())
	}
	if !ctrl.IsOwner() {
		return fmt.Errorf("you can only delete your own listings")
	}
	if !ctrl.Delete(ctx) {
		if msg := ctrl.ErrorMessage(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		fmt.Println("cancelled")
		return nil
	}
	fmt.Println("listing deleted")
	return nil
}

// draftFieldNames are the wire names validation errors come back under.
var draftFieldNames = []string{
	"title", "description", "price", "category", "condition",
	"contact_phone", "contact_email",
}

func draftFlags(fs *flag.FlagSet) *domain.ListingDraft {
	d := &domain.ListingDraft{}
	fs.StringVar(&d.Title, "title", "", "listing title")
	fs.StringVar(&d.Description, "description", "", "listing description")
	fs.StringVar(&d.Price, "price", "", "price")
	fs.StringVar(&d.Category, "category", "", "category key")
	fs.StringVar(&d.Condition, "condition", "", "condition key")
	fs.StringVar(&d.ContactPhone, "phone", "", "contact phone")
	fs.StringVar(&d.ContactEmail, "email", "", "contact email")
	return d
}

// overlayDraft copies only the flags the user actually passed onto the
// loaded draft, so an edit leaves untouched fields as they were.
func overlayDraft(dst *domain.ListingDraft, fs *flag.FlagSet, src *domain.ListingDraft) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			dst.Title = src.Title
		case "description":
			dst.Description = src.Description
		case "price":
			dst.Price = src.Price
		case "category":
			dst.Category = src.Category
		case "condition":
			dst.Condition = src.Condition
		case "phone":
			dst.ContactPhone = src.ContactPhone
		case "email":
			dst.ContactEmail = src.ContactEmail
		}
	})
}
