package glot

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTranslateAsync(t *testing.T) {
	backend := translatingBackend("merhaba", "en")
	orch := New(factoryFor(backend))

	ch := orch.TranslateAsync(context.Background(), "hello", SourceAuto, "tr")

	select {
	case out := <-ch:
		if out.Err != nil {
			t.Fatalf("Expected no error, got: %v", out.Err)
		}
		if out.Result.Text != "merhaba" {
			t.Errorf("Expected merhaba, got %q", out.Result.Text)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for async outcome")
	}

	// Single send, then closed.
	if _, open := <-ch; open {
		t.Error("Expected channel to be closed after the outcome")
	}
}

func TestTranslateAsync_Error(t *testing.T) {
	backend := &fakeBackend{fn: func(text, source, target string) (BackendResult, error) {
		return BackendResult{}, &BackendError{Message: "boom"}
	}}
	orch := New(factoryFor(backend))

	out := <-orch.TranslateAsync(context.Background(), "hello", "en", "tr")

	var backendErr *BackendError
	if !errors.As(out.Err, &backendErr) {
		t.Fatalf("Expected *BackendError, got: %v", out.Err)
	}
	if out.Result.DetectedSource != "en" {
		t.Errorf("Expected fallback source en, got %q", out.Result.DetectedSource)
	}
}

func TestTranslateAll(t *testing.T) {
	// "de" fails, the others succeed; each target carries its own outcome.
	backend := &fakeBackend{fn: func(text, source, target string) (BackendResult, error) {
		if target == "de" {
			return BackendResult{}, &BackendError{Message: "boom"}
		}
		return BackendResult{Text: "translated:" + target, DetectedSource: "en"}, nil
	}}
	orch := New(factoryFor(backend))

	outcomes := orch.TranslateAll(context.Background(), "hello", SourceAuto, []string{"tr", "de", "fr"})

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}

	for _, target := range []string{"tr", "fr"} {
		out := outcomes[target]
		if out.Err != nil {
			t.Errorf("Target %s: expected success, got: %v", target, out.Err)
		}
		if out.Result.Text != "translated:"+target {
			t.Errorf("Target %s: unexpected text %q", target, out.Result.Text)
		}
	}

	if outcomes["de"].Err == nil {
		t.Error("Target de: expected an error")
	}
	if outcomes["de"].Result.DetectedSource != "en" {
		t.Errorf("Target de: expected fallback source en, got %q", outcomes["de"].Result.DetectedSource)
	}
}

func TestTranslateAll_DuplicateTargets(t *testing.T) {
	backend := translatingBackend("merhaba", "en")
	orch := New(factoryFor(backend))

	outcomes := orch.TranslateAll(context.Background(), "hello", SourceAuto, []string{"tr", "tr"})

	if len(outcomes) != 1 {
		t.Errorf("Expected duplicates to collapse to 1 entry, got %d", len(outcomes))
	}
}

func TestTranslateAll_Empty(t *testing.T) {
	orch := New(factoryFor(translatingBackend("x", "en")))

	if outcomes := orch.TranslateAll(context.Background(), "hello", SourceAuto, nil); len(outcomes) != 0 {
		t.Errorf("Expected no outcomes for no targets, got %d", len(outcomes))
	}
}
