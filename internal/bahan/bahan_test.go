package bahan

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"inventaris-lab-backend/internal/export"
	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/filter"
	"inventaris-lab-backend/internal/testutil"
)

func i64(v int64) *int64   { return &v }
func str(v string) *string { return &v }
func boolp(v bool) *bool   { return &v }

func validCreate() CreateMaterialRequest {
	return CreateMaterialRequest{
		Name: "Asam Klorida", Symbol: "HCl", Quantity: i64(500), Unit: "ml",
		Acquired: "2024-03-02", Lab: "Kimia", Location: "Rak B",
	}
}

func TestCreateDefaultsAndOptionalSymbol(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.DB(t))

	req := validCreate()
	req.Symbol = ""
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Symbol != "" || got.Expired {
		t.Fatalf("defaults: %+v", got)
	}
	if got != created {
		t.Fatalf("round trip: got=%+v want=%+v", got, created)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(testutil.DB(t))
	cases := map[string]func(*CreateMaterialRequest){
		"missing name":    func(r *CreateMaterialRequest) { r.Name = "" },
		"missing jumlah":  func(r *CreateMaterialRequest) { r.Quantity = nil },
		"negative jumlah": func(r *CreateMaterialRequest) { r.Quantity = i64(-5) },
		"unknown unit":    func(r *CreateMaterialRequest) { r.Unit = "ton" },
		"bad date":        func(r *CreateMaterialRequest) { r.Acquired = "2024-02-30" },
		"unknown lab":     func(r *CreateMaterialRequest) { r.Lab = "kimia" },
		"missing lokasi":  func(r *CreateMaterialRequest) { r.Location = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreate()
			mutate(&req)
			if _, err := svc.Create(context.Background(), req); !inventory.IsCode(err, inventory.CodeInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.DB(t))
	created, _ := svc.Create(ctx, validCreate())

	got, err := svc.Update(ctx, created.ID, UpdateMaterialRequest{Expired: boolp(true), Symbol: str(""), Quantity: i64(0)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.Expired || got.Symbol != "" || got.Quantity != 0 || got.Name != "Asam Klorida" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if _, err := svc.Update(ctx, created.ID, UpdateMaterialRequest{Unit: str("pcs")}); !inventory.IsCode(err, inventory.CodeInvalidArgument) {
		t.Fatalf("bad unit: got=%v", err)
	}
	if _, err := svc.Update(ctx, 77, UpdateMaterialRequest{Quantity: i64(1)}); !inventory.IsCode(err, inventory.CodeNotFound) {
		t.Fatalf("missing: got=%v", err)
	}
}

func TestListSearchesSymbol(t *testing.T) {
	ctx := context.Background()
	conn := testutil.DB(t)
	testutil.InsertMaterial(t, conn, "Asam Klorida", "HCl", 500, "ml", false, "Kimia", "Rak B")
	testutil.InsertMaterial(t, conn, "Natrium Hidroksida", "NaOH", 250, "gram", false, "Kimia", "Rak C")
	svc := NewService(conn)

	got, err := svc.List(ctx, filter.MaterialQuery{Search: "naoh"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Symbol != "NaOH" {
		t.Fatalf("filtered: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.DB(t))
	created, _ := svc.Create(ctx, validCreate())
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, created.ID); !inventory.IsCode(err, inventory.CodeNotFound) {
		t.Fatalf("get after delete: got=%v", err)
	}
}

func TestHTTPExportLabels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := testutil.DB(t)
	testutil.InsertMaterial(t, conn, "Etanol", "", 5, "liter", true, "Kimia", "Rak A")
	testutil.InsertMaterial(t, conn, "Aquades", "H2O", 10, "liter", false, "Kimia", "Rak B")
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewService(conn), export.New(nil, nil), func(c *gin.Context) { c.Next() })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/bahan/export", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rr.Code, rr.Body.String())
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != `attachment; filename="Bahan.xlsx"` {
		t.Fatalf("content disposition: %s", cd)
	}
	f, err := excelize.OpenReader(rr.Body)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Sheet1")
	if len(rows) != 3 || rows[1][5] != "Expired" || rows[2][5] != "Not Expired" {
		t.Fatalf("rows: %v", rows)
	}
}

func TestHTTPCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewService(testutil.DB(t)), export.New(nil, nil), func(c *gin.Context) { c.Next() })

	body, _ := json.Marshal(map[string]any{
		"nama": "Etanol", "simbol": "C2H5OH", "jumlah": 3, "satuan": "liter", "is_expired": false,
		"tanggal": "2024-02-01", "lab": "Kimia", "lokasi": "Rak A",
	})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/bahan", bytes.NewReader(body)))
	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	var got map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	for _, key := range []string{"id", "nama", "simbol", "jumlah", "satuan", "is_expired", "tanggal", "lab", "lokasi"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("response lacks %q: %s", key, rr.Body.String())
		}
	}
}
