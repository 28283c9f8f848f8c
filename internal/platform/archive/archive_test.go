package archive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestOpenNone(t *testing.T) {
	for _, d := range []string{"", "none"} {
		s, err := Open(context.Background(), Config{Driver: d})
		if err != nil || s != nil {
			t.Fatalf("driver %q: store=%v err=%v", d, s, err)
		}
	}
	if _, err := Open(context.Background(), Config{Driver: "ftp"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestFilesystemPut(t *testing.T) {
	root := t.TempDir()
	s, err := Open(context.Background(), Config{Driver: "fs", FSRoot: root})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Driver() != DriverFilesystem {
		t.Fatalf("driver: got=%s", s.Driver())
	}

	key := "exports/alat/01HZX.xlsx"
	if err := s.Put(context.Background(), key, strings.NewReader("PK-data"), "application/octet-stream"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "exports", "alat", "01HZX.xlsx"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "PK-data" {
		t.Fatalf("content: got=%q", got)
	}

	if err := s.Put(context.Background(), key, strings.NewReader("again"), ""); err == nil {
		t.Fatal("second put on the same key must fail")
	}
}

func TestFilesystemRejectsEscapingKeys(t *testing.T) {
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"", "../x.xlsx", "/etc/passwd", "a/../../x"} {
		if err := s.Put(context.Background(), key, strings.NewReader("x"), ""); err == nil {
			t.Fatalf("key %q should be rejected", key)
		}
	}
}

func TestS3Put(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		ctype  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		method, path, ctype = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		mu.Unlock()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewS3(context.Background(), S3Config{
		Bucket:          "lab-exports",
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
	})
	if err != nil {
		t.Fatalf("new s3: %v", err)
	}
	if s.Driver() != DriverS3 {
		t.Fatalf("driver: got=%s", s.Driver())
	}

	ctypeXLSX := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if err := s.Put(context.Background(), "exports/bahan/01HZX.xlsx", strings.NewReader("PK-data"), ctypeXLSX); err != nil {
		t.Fatalf("put: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if method != http.MethodPut {
		t.Fatalf("method: got=%s want=PUT", method)
	}
	if path != "/lab-exports/exports/bahan/01HZX.xlsx" {
		t.Fatalf("path: got=%s", path)
	}
	if ctype != ctypeXLSX {
		t.Fatalf("content type: got=%s", ctype)
	}
}

func TestS3RequiresBucket(t *testing.T) {
	if _, err := NewS3(context.Background(), S3Config{}); err == nil {
		t.Fatal("expected error without bucket")
	}
}
