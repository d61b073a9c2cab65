package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*CloudinaryProvider, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewCloudinary(Config{
		BaseURL:      srv.URL,
		CloudName:    "demo",
		UploadPreset: "unsigned",
		APIKey:       "key",
		APISecret:    "secret",
	}, zap.NewNop())
	return p, srv
}

func TestUploadSendsPresetAndFolder(t *testing.T) {
	var gotPreset, gotFolder, gotPath string
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")
		gotFolder = r.FormValue("folder")
		if _, _, err := r.FormFile("file"); err != nil {
			t.Fatalf("form file: %v", err)
		}
		w.Write([]byte(`{"secure_url":"https://cdn.example/acme/mug/a.png"}`))
	})

	url, err := p.Upload(context.Background(), strings.NewReader("png-bytes"), "a.png", "acme/mug")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.example/acme/mug/a.png" {
		t.Fatalf("url %q", url)
	}
	if gotPath != "/demo/upload" {
		t.Fatalf("path %q", gotPath)
	}
	if gotPreset != "unsigned" || gotFolder != "acme/mug" {
		t.Fatalf("preset %q folder %q", gotPreset, gotFolder)
	}
}

func TestUploadSurfacesAPIError(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	})

	_, err := p.Upload(context.Background(), strings.NewReader("x"), "a.png", "acme/mug")
	if err == nil || !strings.Contains(err.Error(), "Upload preset not found") {
		t.Fatalf("expected preset error, got %v", err)
	}
}

func TestDeleteFolderUsesBasicAuthAndPrefix(t *testing.T) {
	var gotMethod, gotPath, gotPrefix string
	var gotUser, gotPass string
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))
		gotPrefix = vals.Get("prefix")
		w.Write([]byte(`{"deleted":{}}`))
	})

	if err := p.DeleteFolder(context.Background(), "acme/mug"); err != nil {
		t.Fatalf("delete folder: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/demo/resources/image/upload" {
		t.Fatalf("method %q path %q", gotMethod, gotPath)
	}
	if gotUser != "key" || gotPass != "secret" {
		t.Fatalf("basic auth %q:%q", gotUser, gotPass)
	}
	if gotPrefix != "acme/mug" {
		t.Fatalf("prefix %q", gotPrefix)
	}
}

func TestDeleteFolderNon200(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if err := p.DeleteFolder(context.Background(), "acme/mug"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNoOpProvider(t *testing.T) {
	p := &NoOpProvider{}
	if _, err := p.Upload(context.Background(), strings.NewReader("x"), "a.png", "f"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := p.DeleteFolder(context.Background(), "f"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
