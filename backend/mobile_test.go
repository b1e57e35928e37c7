package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veznalabs/glot"
)

const mobilePage = `<!DOCTYPE html>
<html><body>
<div class="header">Google Translate</div>
<div class="result-container">merhaba <b>dünya</b></div>
</body></html>`

func TestMobileBackend_Translate(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		q := r.URL.Query()
		gotQuery = map[string]string{"sl": q.Get("sl"), "tl": q.Get("tl"), "q": q.Get("q")}
		w.Write([]byte(mobilePage))
	}))
	defer srv.Close()

	b := NewMobileBackend(MobileConfig{BaseURL: srv.URL})

	res, err := b.Translate(context.Background(), "hello world", "en", "tr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if res.Text != "merhaba dünya" {
		t.Errorf("Expected text with nested markup flattened, got %q", res.Text)
	}
	// Explicit source is echoed back; the page has no detection channel.
	if res.DetectedSource != "en" {
		t.Errorf("Expected detected source en, got %q", res.DetectedSource)
	}

	if gotPath != "/m" {
		t.Errorf("Expected /m path, got %q", gotPath)
	}
	want := map[string]string{"sl": "en", "tl": "tr", "q": "hello world"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("Query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestMobileBackend_AutoReportsNoDetection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(mobilePage))
	}))
	defer srv.Close()

	b := NewMobileBackend(MobileConfig{BaseURL: srv.URL})

	res, err := b.Translate(context.Background(), "hello world", glot.SourceAuto, "tr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.DetectedSource != "" {
		t.Errorf("Expected empty detected source for auto, got %q", res.DetectedSource)
	}
}

func TestMobileBackend_MissingResultContainer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="error">captcha</div></body></html>`))
	}))
	defer srv.Close()

	b := NewMobileBackend(MobileConfig{BaseURL: srv.URL})

	_, err := b.Translate(context.Background(), "hello", glot.SourceAuto, "tr")

	var backendErr *glot.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("Expected *glot.BackendError, got: %v", err)
	}
}

func TestMobileBackend_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	b := NewMobileBackend(MobileConfig{BaseURL: srv.URL})

	_, err := b.Translate(context.Background(), "hello", glot.SourceAuto, "tr")

	var backendErr *glot.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("Expected *glot.BackendError, got: %v", err)
	}
	if !backendErr.Retryable {
		t.Error("Expected 429 to be retryable")
	}
}
