// cmd/easyboard/browse.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/easyboard/easyboard-go/internal/core/services"
)

const browseHelp = `commands:
  set <field> <value>   update a filter (category, condition, min_price,
                        max_price, q, ordering, date_from, date_to);
                        the search re-runs after a short pause
  apply                 search immediately
  reset                 restore default filters and search
  next / prev           follow the pagination cursors
  ls                    render the current result page
  open <n>              show the n-th listing of the page
  help                  this text
  quit                  leave
`

// runBrowse is the interactive search loop. Filter edits go through the
// debounced path; apply and reset bypass it, exactly like the form.
func (a *app) runBrowse(ctx context.Context) error {
	ctrl := services.NewSearchController(a.client, a.client, a.cfg.Search.Debounce, a.cfg.Search.PageSize, a.logger)
	defer ctrl.Close()

	ctrl.Load(ctx)
	renderPage(ctrl)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			renderPage(ctrl)
			continue
		}
		parts := strings.SplitN(line, " ", 3)
		switch parts[0] {
		case "quit", "q", "exit":
			return nil
		case "help":
			fmt.Print(browseHelp)
		case "set":
			if len(parts) < 2 {
				fmt.Println("usage: set <field> [value]")
				continue
			}
			value := ""
			if len(parts) == 3 {
				value = parts[2]
			}
			if err := ctrl.SetFilter(parts[1], value); err != nil {
				fmt.Println(err)
			}
		case "apply":
			ctrl.ApplyFilters()
			renderPage(ctrl)
		case "reset":
			ctrl.ResetFilters()
			renderPage(ctrl)
		case "next":
			ctrl.GoToPage(ctx, ctrl.Page().Next)
			renderPage(ctrl)
		case "prev":
			ctrl.GoToPage(ctx, ctrl.Page().Previous)
			renderPage(ctrl)
		case "ls":
			renderPage(ctrl)
		case "open":
			if len(parts) < 2 {
				fmt.Println("usage: open <n>")
				continue
			}
			a.openFromPage(ctx, ctrl, parts[1])
		default:
			fmt.Printf("unknown command %q (try help)\n", parts[0])
		}
	}
}

func (a *app) openFromPage(ctx context.Context, ctrl *services.SearchController, arg string) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
		fmt.Println("usage: open <n>")
		return
	}
	page := ctrl.Page()
	if n < 1 || n > len(page.Results) {
		fmt.Printf("no listing %d on this page\n", n)
		return
	}
	if err := a.runShow(ctx, []string{fmt.Sprint(page.Results[n-1].ID)}); err != nil {
		fmt.Println(err)
	}
}
