package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/veznalabs/glot"
	"github.com/veznalabs/glot/backend"
)

func testServer(t *testing.T, factory glot.BackendFactory) (*Server, *echo.Echo) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.MaxChars = 50

	orch := glot.New(factory, glot.WithLogger(zerolog.Nop()))
	s := NewServer(orch, cfg, zerolog.Nop())

	e := echo.New()
	s.registerRoutes(e)
	return s, e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, jsendResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp jsendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func TestHandleTranslate_Success(t *testing.T) {
	mock := backend.NewMock()
	_, e := testServer(t, func() (glot.Backend, error) { return mock, nil })

	rec, resp := doJSON(t, e, http.MethodPost, "/api/v1/translate",
		`{"text":"hello","source":"auto","target":"tr"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp.Status != "success" {
		t.Fatalf("Expected success, got %q", resp.Status)
	}

	data := resp.Data.(map[string]any)
	if data["text"] != "merhaba" {
		t.Errorf("Expected merhaba, got %v", data["text"])
	}
	if data["detected_source"] != "en" {
		t.Errorf("Expected detected source en, got %v", data["detected_source"])
	}
}

func TestHandleTranslate_BackendFailure(t *testing.T) {
	mock := backend.NewMock()
	mock.Err = &glot.BackendError{Message: "boom", Retryable: true}
	_, e := testServer(t, func() (glot.Backend, error) { return mock, nil })

	rec, resp := doJSON(t, e, http.MethodPost, "/api/v1/translate",
		`{"text":"hello","source":"en","target":"tr"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}
	if resp.Message != glot.MsgBackendError {
		t.Errorf("Expected fixed backend message, got %q", resp.Message)
	}

	data := resp.Data.(map[string]any)
	if data["detected_source"] != "en" {
		t.Errorf("Expected fallback source en, got %v", data["detected_source"])
	}
}

func TestHandleTranslate_Unavailable(t *testing.T) {
	_, e := testServer(t, nil)

	rec, resp := doJSON(t, e, http.MethodPost, "/api/v1/translate",
		`{"text":"hello","source":"auto","target":"tr"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}
	if resp.Message != glot.MsgUnavailable {
		t.Errorf("Expected unavailable message, got %q", resp.Message)
	}
}

func TestHandleTranslate_CharLimit(t *testing.T) {
	mock := backend.NewMock()
	_, e := testServer(t, func() (glot.Backend, error) { return mock, nil })

	long := strings.Repeat("a", 51)
	rec, resp := doJSON(t, e, http.MethodPost, "/api/v1/translate",
		`{"text":"`+long+`","source":"auto","target":"tr"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if !strings.Contains(resp.Message, "50 character limit") {
		t.Errorf("Expected char limit message, got %q", resp.Message)
	}
	if mock.CallCount() != 0 {
		t.Errorf("Backend should not be called for oversized input, calls = %d", mock.CallCount())
	}
}

func TestHandleTranslate_DefaultsApplied(t *testing.T) {
	mock := backend.NewMock()
	_, e := testServer(t, func() (glot.Backend, error) { return mock, nil })

	doJSON(t, e, http.MethodPost, "/api/v1/translate", `{"text":"hello"}`)

	_, source, target := mock.LastRequest()
	if source != "auto" {
		t.Errorf("Expected default source auto, got %q", source)
	}
	if target != "en" {
		t.Errorf("Expected default target en, got %q", target)
	}
}

func TestHandleLanguages(t *testing.T) {
	_, e := testServer(t, nil)

	rec, resp := doJSON(t, e, http.MethodGet, "/api/v1/languages", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	data := resp.Data.(map[string]any)
	langs := data["languages"].([]any)
	if len(langs) != len(glot.Languages()) {
		t.Errorf("Expected %d languages, got %d", len(glot.Languages()), len(langs))
	}

	first := langs[0].(map[string]any)
	if first["name"] != "English (US)" || first["code"] != "en" {
		t.Errorf("Expected English (US)/en first, got %v", first)
	}

	if data["default_source"] != "auto" {
		t.Errorf("Expected default source auto, got %v", data["default_source"])
	}
}

func TestHandleLocale(t *testing.T) {
	_, e := testServer(t, nil)

	tests := []struct {
		code   string
		locale string
	}{
		{"tr", "tr-TR"},
		{"en", "en-US"},
		{"zz", "zz"}, // identity fallback
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec, resp := doJSON(t, e, http.MethodGet, "/api/v1/locale/"+tt.code, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d", rec.Code)
			}
			data := resp.Data.(map[string]any)
			if data["locale"] != tt.locale {
				t.Errorf("LocaleFor(%q) = %v, want %q", tt.code, data["locale"], tt.locale)
			}
		})
	}
}

func TestHandleVersion(t *testing.T) {
	_, e := testServer(t, nil)

	rec, resp := doJSON(t, e, http.MethodGet, "/api/v1/version", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	data := resp.Data.(map[string]any)
	if data["name"] != glot.Name {
		t.Errorf("Expected name %q, got %v", glot.Name, data["name"])
	}
}
