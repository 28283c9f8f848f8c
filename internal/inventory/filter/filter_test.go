package filter

import (
	"reflect"
	"testing"

	"inventaris-lab-backend/internal/inventory"
)

var tools = []inventory.Tool{
	{ID: 1, Name: "Mikroskop Binokuler", Lab: inventory.LabBiologi, Location: "Lemari A"},
	{ID: 2, Name: "Neraca Ohaus", Lab: inventory.LabFisika, Location: "Meja 3"},
	{ID: 3, Name: "Gelas Kimia", Lab: inventory.LabKimia, Location: "Lemari MIKRO"},
	{ID: 4, Name: "Kaca Pembesar", Lab: inventory.LabBiologi, Location: "Rak 1"},
}

var materials = []inventory.Material{
	{ID: 1, Name: "Asam Klorida", Symbol: "HCl", Lab: inventory.LabKimia, Location: "Rak B"},
	{ID: 2, Name: "Natrium Hidroksida", Symbol: "NaOH", Lab: inventory.LabKimia, Location: "Rak C"},
	{ID: 3, Name: "Alkohol 70%", Lab: inventory.LabBiologi, Location: "Gudang"},
}

func ptr(s string) *string { return &s }

var loans = []inventory.Loan{
	{ID: 1, Kind: inventory.KindTool, ItemName: "Mikroskop Binokuler"},
	{ID: 2, Kind: inventory.KindMaterial, ItemName: "Asam Klorida", ReturnDate: ptr("2024-05-02")},
	{ID: 3, Kind: inventory.KindTool, ItemName: "Neraca Ohaus", ReturnDate: ptr("2024-05-03")},
	{ID: 4, Kind: inventory.KindMaterial, ItemName: "Alkohol 70%"},
}

func toolIDs(ts []inventory.Tool) []int64 {
	out := []int64{}
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func materialIDs(ms []inventory.Material) []int64 {
	out := []int64{}
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func loanIDs(ls []inventory.Loan) []int64 {
	out := []int64{}
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestTools(t *testing.T) {
	cases := []struct {
		name string
		q    ToolQuery
		want []int64
	}{
		{"empty query keeps everything", ToolQuery{}, []int64{1, 2, 3, 4}},
		{"semua lab", ToolQuery{Lab: inventory.LabAll}, []int64{1, 2, 3, 4}},
		{"name is case-insensitive", ToolQuery{Search: "mikro"}, []int64{1, 3}},
		{"location", ToolQuery{Search: "lemari"}, []int64{1, 3}},
		{"lab only", ToolQuery{Lab: inventory.LabBiologi}, []int64{1, 4}},
		{"search and lab", ToolQuery{Search: "lemari", Lab: inventory.LabKimia}, []int64{3}},
		{"no match", ToolQuery{Search: "osiloskop"}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toolIDs(Tools(tools, tc.q)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestMaterials(t *testing.T) {
	cases := []struct {
		name string
		q    MaterialQuery
		want []int64
	}{
		{"symbol", MaterialQuery{Search: "naoh"}, []int64{2}},
		{"name", MaterialQuery{Search: "ASAM"}, []int64{1}},
		{"location", MaterialQuery{Search: "rak"}, []int64{1, 2}},
		{"lab", MaterialQuery{Lab: inventory.LabBiologi}, []int64{3}},
		{"empty symbol never matches by itself", MaterialQuery{Search: "hcl", Lab: inventory.LabBiologi}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := materialIDs(Materials(materials, tc.q)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestLoans(t *testing.T) {
	cases := []struct {
		name string
		q    LoanQuery
		want []int64
	}{
		{"all", LoanQuery{Kind: inventory.KindAll, Status: inventory.StatusAll}, []int64{1, 2, 3, 4}},
		{"kind", LoanQuery{Kind: inventory.KindMaterial}, []int64{2, 4}},
		{"outstanding", LoanQuery{Status: inventory.StatusOutstanding}, []int64{1, 4}},
		{"returned", LoanQuery{Status: inventory.StatusReturned}, []int64{2, 3}},
		{"search item name", LoanQuery{Search: "neraca"}, []int64{3}},
		{"combined", LoanQuery{Search: "o", Kind: inventory.KindTool, Status: inventory.StatusOutstanding}, []int64{1}},
		{"unknown status", LoanQuery{Status: inventory.LoanStatus("Hilang")}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := loanIDs(Loans(loans, tc.q)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestFiltersAreIdempotent(t *testing.T) {
	tq := ToolQuery{Search: "a", Lab: inventory.LabBiologi}
	once := Tools(tools, tq)
	if twice := Tools(once, tq); !reflect.DeepEqual(once, twice) {
		t.Fatalf("tools: once=%v twice=%v", toolIDs(once), toolIDs(twice))
	}

	mq := MaterialQuery{Search: "rak"}
	onceM := Materials(materials, mq)
	if twice := Materials(onceM, mq); !reflect.DeepEqual(onceM, twice) {
		t.Fatalf("materials: once=%v twice=%v", materialIDs(onceM), materialIDs(twice))
	}

	lq := LoanQuery{Search: "o", Status: inventory.StatusOutstanding}
	onceL := Loans(loans, lq)
	if twice := Loans(onceL, lq); !reflect.DeepEqual(onceL, twice) {
		t.Fatalf("loans: once=%v twice=%v", loanIDs(onceL), loanIDs(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := append([]inventory.Tool(nil), tools...)
	_ = Tools(in, ToolQuery{Search: "mikro"})
	if !reflect.DeepEqual(in, tools) {
		t.Fatal("input slice changed")
	}
}

func TestSearchLowercasesWithoutFolding(t *testing.T) {
	tools := []inventory.Tool{{ID: 1, Name: "Maßband", Location: "Rak 1"}, {ID: 2, Name: "Gelas Ukur", Location: "Rak 2"}}

	if got := Tools(tools, ToolQuery{Search: "ss"}); len(got) != 0 {
		t.Fatalf("ss must not match ß: got=%v", got)
	}
	if got := Tools(tools, ToolQuery{Search: "MAß"}); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("case-insensitive: got=%v", got)
	}
	if got := Tools(tools, ToolQuery{Search: "gelas UKUR"}); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("mixed case: got=%v", got)
	}
}
