package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"inventaris-lab-backend/internal/platform/auth"
	"inventaris-lab-backend/internal/platform/config"
	"inventaris-lab-backend/internal/platform/logger"
	"inventaris-lab-backend/internal/platform/metrics"
	"inventaris-lab-backend/internal/testutil"
)

func testRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conn := testutil.DB(t)
	svc := auth.NewService(conn, []byte(cfg.Auth.JWTSecret), time.Hour)
	return newRouter(cfg, conn, nil, svc, metrics.New(), logger.Nop())
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRouterWiring(t *testing.T) {
	cfg, err := config.Parse([]byte("mode: dev\n"))
	if err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, cfg)

	if rr := serve(r, http.MethodGet, "/healthz", ""); rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("healthz: %d %s", rr.Code, rr.Body.String())
	}
	rr := serve(r, http.MethodPost, "/api/alat", `{"nama":"Mikroskop","baik":5,"rusak":0,"tanggal":"2024-01-15","lab":"Biologi","lokasi":"Lemari A"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create alat with auth off: %d %s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
	rr = serve(r, http.MethodPost, "/api/peminjaman", `{"peminjam":"Budi","namaItem":"Mikroskop","jumlah":2,"tanggalPinjam":"2024-05-01"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("borrow: %d %s", rr.Code, rr.Body.String())
	}
	if rr := serve(r, http.MethodGet, "/api/dashboard", ""); !strings.Contains(rr.Body.String(), `"alatBaik":3`) {
		t.Fatalf("dashboard: %s", rr.Body.String())
	}

	rr = serve(r, http.MethodGet, "/metrics", "")
	if !strings.Contains(rr.Body.String(), "ledger_borrows_total") || !strings.Contains(rr.Body.String(), "http_requests_total") {
		t.Fatalf("metrics body lacks counters:\n%s", rr.Body.String())
	}
	if rr := serve(r, http.MethodGet, "/api/nothing", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown api route: %d", rr.Code)
	}
}

func TestRouterAuthEnabled(t *testing.T) {
	cfg, err := config.Parse([]byte("mode: release\nauth:\n  enabled: true\n  jwt_secret: s3cret\n"))
	if err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, cfg)

	if rr := serve(r, http.MethodGet, "/api/alat", ""); rr.Code != http.StatusOK {
		t.Fatalf("reads stay public: %d", rr.Code)
	}
	if rr := serve(r, http.MethodDelete, "/api/alat/1", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("write without token: %d", rr.Code)
	}
	if rr := serve(r, http.MethodGet, "/swagger/index.html", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("swagger must be dev only: %d", rr.Code)
	}
}

func TestSPAFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600); err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(spaHandler(os.DirFS(dir)))

	rr := serve(r, http.MethodGet, "/app.js", "")
	if rr.Code != http.StatusOK || rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("asset: %d %v", rr.Code, rr.Header())
	}
	rr = serve(r, http.MethodGet, "/laporan/Kimia", "")
	if rr.Code != http.StatusOK || rr.Body.String() != "<html>app</html>" {
		t.Fatalf("fallback: %d %s", rr.Code, rr.Body.String())
	}
	if rr := serve(r, http.MethodGet, "/api/x", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("api must not fall back: %d", rr.Code)
	}
}
