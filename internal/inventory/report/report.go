// Package report derives the dashboard and per-lab summaries from the
// inventory collections. Nothing here is stored; callers recompute on every
// request.
package report

import "inventaris-lab-backend/internal/inventory"

// Totals are the four condition figures shown on the dashboard chart.
type Totals struct {
	ToolsGood          int64 `json:"alatBaik"`
	ToolsDamaged       int64 `json:"alatRusak"`
	MaterialsAvailable int64 `json:"bahanTersedia"`
	MaterialsExpired   int64 `json:"bahanKadaluarsa"`
}

type Dashboard struct {
	Totals
	ToolCount        int `json:"jumlahAlat"`
	MaterialCount    int `json:"jumlahBahan"`
	LoanCount        int `json:"jumlahPeminjaman"`
	OutstandingLoans int `json:"peminjamanAktif"`
}

type Lab struct {
	Lab inventory.Lab `json:"lab"`
	Totals
	Tools         []inventory.Tool     `json:"alat"`
	Materials     []inventory.Material `json:"bahan"`
	ToolLoans     []inventory.Loan     `json:"penggunaanAlat"`
	MaterialLoans []inventory.Loan     `json:"penggunaanBahan"`
}

// Summarize adds up the condition figures. Expired materials are counted,
// not summed.
func Summarize(tools []inventory.Tool, materials []inventory.Material) Totals {
	var t Totals
	for _, x := range tools {
		t.ToolsGood += x.Good
		t.ToolsDamaged += x.Damaged
	}
	for _, m := range materials {
		t.MaterialsAvailable += m.Quantity
		if m.Expired {
			t.MaterialsExpired++
		}
	}
	return t
}

func BuildDashboard(tools []inventory.Tool, materials []inventory.Material, loans []inventory.Loan) Dashboard {
	d := Dashboard{
		Totals:        Summarize(tools, materials),
		ToolCount:     len(tools),
		MaterialCount: len(materials),
		LoanCount:     len(loans),
	}
	for _, l := range loans {
		if l.Outstanding() {
			d.OutstandingLoans++
		}
	}
	return d
}

// LoansForLab keeps the loans of the given kind whose item name exists in
// that lab's collection. A name present in several labs counts for each.
func LoansForLab(loans []inventory.Loan, tools []inventory.Tool, materials []inventory.Material, lab inventory.Lab, kind inventory.Kind) []inventory.Loan {
	names := make(map[string]struct{})
	switch kind {
	case inventory.KindTool:
		for _, t := range tools {
			if t.Lab == lab {
				names[t.Name] = struct{}{}
			}
		}
	case inventory.KindMaterial:
		for _, m := range materials {
			if m.Lab == lab {
				names[m.Name] = struct{}{}
			}
		}
	}

	out := []inventory.Loan{}
	for _, l := range loans {
		if l.Kind != kind {
			continue
		}
		if _, ok := names[l.ItemName]; ok {
			out = append(out, l)
		}
	}
	return out
}

// ForLab builds the report card of one lab.
func ForLab(lab inventory.Lab, tools []inventory.Tool, materials []inventory.Material, loans []inventory.Loan) Lab {
	r := Lab{
		Lab:       lab,
		Tools:     []inventory.Tool{},
		Materials: []inventory.Material{},
	}
	for _, t := range tools {
		if t.Lab == lab {
			r.Tools = append(r.Tools, t)
		}
	}
	for _, m := range materials {
		if m.Lab == lab {
			r.Materials = append(r.Materials, m)
		}
	}
	r.Totals = Summarize(r.Tools, r.Materials)
	r.ToolLoans = LoansForLab(loans, tools, materials, lab, inventory.KindTool)
	r.MaterialLoans = LoansForLab(loans, tools, materials, lab, inventory.KindMaterial)
	return r
}

// ByLab returns one report per lab in inventory.Labs order.
func ByLab(tools []inventory.Tool, materials []inventory.Material, loans []inventory.Loan) []Lab {
	out := make([]Lab, 0, len(inventory.Labs))
	for _, lab := range inventory.Labs {
		out = append(out, ForLab(lab, tools, materials, loans))
	}
	return out
}
