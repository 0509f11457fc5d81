// Package ui holds the admin HTML fragments. Components are written directly
// against the templ runtime so handlers can render them the same way as any
// generated component.
package ui

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/tanmaydb/courtdesk/internal/directory"
	"github.com/tanmaydb/courtdesk/internal/models"
)

// MemberSearchResults renders the merged identity rows for the admin member
// search box.
func MemberSearchResults(people []directory.Person) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(people) == 0 {
			_, err := io.WriteString(w, `<div class="search-empty">No paid members found</div>`)
			return err
		}
		if _, err := io.WriteString(w, `<ul class="search-results">`); err != nil {
			return err
		}
		for _, p := range people {
			_, err := fmt.Fprintf(w,
				`<li class="search-result" data-id="%s"><span class="name">%s</span><span class="email">%s</span><span class="phone">%s</span></li>`,
				html.EscapeString(p.ID),
				html.EscapeString(p.Name),
				html.EscapeString(p.Email),
				html.EscapeString(p.Phone),
			)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// PaymentBadge renders the paid/pending state for a registration row. The
// badge reads adminPaid, not status: status is always "PAID" in this flow.
func PaymentBadge(reg models.Registration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, label := badgeState(reg)
		_, err := fmt.Fprintf(w, `<span class="badge %s">%s</span>`, class, html.EscapeString(label))
		return err
	})
}

func badgeState(reg models.Registration) (class, label string) {
	switch {
	case reg.PaymentRef == models.PaymentRefFree:
		return "badge-free", "Free"
	case reg.AdminPaid:
		return "badge-paid", fmt.Sprintf("Paid %.0f %s", reg.Amount, reg.Currency)
	default:
		return "badge-pending", fmt.Sprintf("Cash pending %.0f %s", reg.Amount, reg.Currency)
	}
}
