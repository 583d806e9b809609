// cmd/easyboard/render.go
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/services"
)

func renderPage(ctrl *services.SearchController) {
	if msg := ctrl.ErrorMessage(); msg != "" {
		fmt.Println("error:", msg)
		return
	}
	page := ctrl.Page()
	if len(page.Results) == 0 {
		fmt.Println("no listings found, adjust the filters and try again")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTITLE\tPRICE\tCATEGORY\tCONDITION\tCREATED")
	for i, l := range page.Results {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, l.ID, l.Title, l.Price.String(),
			ctrl.CategoryLabel(l.Category),
			ctrl.ConditionLabel(l.Condition),
			l.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()

	fmt.Printf("total: %d", page.Count)
	if page.HasPrevious() {
		fmt.Print("  [prev]")
	}
	if page.HasNext() {
		fmt.Print("  [next]")
	}
	fmt.Println()
}

func renderDetail(ctrl *services.DetailController) {
	l := ctrl.Listing()
	if l == nil {
		return
	}
	fmt.Printf("#%d %s\n", l.ID, l.Title)
	fmt.Printf("price:     %s\n", l.Price.String())
	fmt.Printf("category:  %s\n", ctrl.CategoryLabel(l.Category))
	fmt.Printf("condition: %s\n", ctrl.ConditionLabel(l.Condition))
	if l.Description != "" {
		fmt.Printf("\n%s\n\n", l.Description)
	}
	fmt.Printf("contact:   %s", l.ContactPhone)
	if l.ContactEmail != "" {
		fmt.Printf(" / %s", l.ContactEmail)
	}
	fmt.Println()
	if l.Author != nil {
		fmt.Printf("author:    %s\n", l.Author.Username)
	}
	fmt.Printf("created:   %s\n", l.CreatedAt.Format("2006-01-02 15:04"))
	if ctrl.IsOwner() {
		fmt.Println("(this is your listing: edit and delete are available)")
	}
}

func renderProfile(ctrl *services.ProfileController) {
	m := ctrl.Member()
	if m == nil {
		return
	}
	fmt.Printf("username: %s\n", m.Username)
	if m.Email != "" {
		fmt.Printf("email:    %s\n", m.Email)
	}
	if m.Phone != "" {
		fmt.Printf("phone:    %s\n", m.Phone)
	}

	if msg := ctrl.OwnAdsError(); msg != "" {
		fmt.Println("could not load your listings:", msg)
		return
	}
	ads := ctrl.OwnAds()
	if len(ads) == 0 {
		fmt.Println("you have no listings yet")
		return
	}
	fmt.Println("\nyour listings:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, l := range ads {
		fmt.Fprintf(w, "  %d\t%s\t%s\n", l.ID, l.Title, l.Price.String())
	}
	w.Flush()
}

func printRequestError(err error) {
	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		fmt.Fprintln(os.Stderr, domain.GenericFailureMessage)
		return
	}
	if apiErr.Detail != "" {
		fmt.Fprintln(os.Stderr, apiErr.Detail)
	}
	for field, msg := range apiErr.Fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
	if apiErr.Detail == "" && len(apiErr.Fields) == 0 {
		fmt.Fprintln(os.Stderr, domain.GenericFailureMessage)
	}
}

func printFormErrors(formError string, fields []string, fieldError func(string) string) {
	if formError != "" {
		fmt.Fprintln(os.Stderr, formError)
	}
	for _, name := range fields {
		if msg := fieldError(name); msg != "" {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", name, msg)
		}
	}
}
