// Package filter narrows the inventory collections the way the lab tables do:
// a case-insensitive substring search plus exact-match dropdowns. All
// functions are pure and keep the input order.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"inventaris-lab-backend/internal/inventory"
)

type ToolQuery struct {
	Search string
	Lab    inventory.Lab
}

type MaterialQuery struct {
	Search string
	Lab    inventory.Lab
}

type LoanQuery struct {
	Search string
	Kind   inventory.Kind
	Status inventory.LoanStatus
}

// matcher lowercases the needle once; a Caser keeps state so each call gets
// its own. Lowercasing, not full folding: "ß" must not turn into "ss".
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(search string) *matcher {
	m := &matcher{fold: cases.Lower(language.Und)}
	m.needle = m.fold.String(search)
	return m
}

// any reports whether one of fields contains the needle.
func (m *matcher) any(fields ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.needle) {
			return true
		}
	}
	return false
}

func labMatches(want, got inventory.Lab) bool {
	return want == "" || want == inventory.LabAll || want == got
}

// Tools matches Search against name or location.
func Tools(tools []inventory.Tool, q ToolQuery) []inventory.Tool {
	m := newMatcher(q.Search)
	out := make([]inventory.Tool, 0, len(tools))
	for _, t := range tools {
		if m.any(t.Name, t.Location) && labMatches(q.Lab, t.Lab) {
			out = append(out, t)
		}
	}
	return out
}

// Materials matches Search against name, symbol or location.
func Materials(materials []inventory.Material, q MaterialQuery) []inventory.Material {
	m := newMatcher(q.Search)
	out := make([]inventory.Material, 0, len(materials))
	for _, x := range materials {
		if m.any(x.Name, x.Symbol, x.Location) && labMatches(q.Lab, x.Lab) {
			out = append(out, x)
		}
	}
	return out
}

// Loans matches Search against the item name. An unknown status matches
// nothing.
func Loans(loans []inventory.Loan, q LoanQuery) []inventory.Loan {
	m := newMatcher(q.Search)
	out := make([]inventory.Loan, 0, len(loans))
	for _, l := range loans {
		if !m.any(l.ItemName) {
			continue
		}
		if q.Kind != "" && q.Kind != inventory.KindAll && q.Kind != l.Kind {
			continue
		}
		switch q.Status {
		case "", inventory.StatusAll:
		case inventory.StatusOutstanding:
			if !l.Outstanding() {
				continue
			}
		case inventory.StatusReturned:
			if l.Outstanding() {
				continue
			}
		default:
			continue
		}
		out = append(out, l)
	}
	return out
}
