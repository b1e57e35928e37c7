package backend

import (
	"context"
	"sync"
)

// Mock is a call-counting fake backend for testing.
type Mock struct {
	Translations   map[string]string // Map of input text to translation
	DetectedSource string            // Detected source reported on every call
	Err            error             // When set, every call fails with this error

	mu         sync.Mutex
	callCount  int
	lastText   string
	lastSource string
	lastTarget string
}

// NewMock creates a new mock backend with default translations.
func NewMock() *Mock {
	return &Mock{
		Translations: map[string]string{
			"hello":       "merhaba",
			"Hello World": "Merhaba Dünya",
			"good night":  "iyi geceler",
		},
		DetectedSource: "en",
	}
}

// Translate returns canned translations, echoing unknown inputs in brackets.
func (m *Mock) Translate(ctx context.Context, text, source, target string) (Result, error) {
	m.mu.Lock()
	m.callCount++
	m.lastText = text
	m.lastSource = source
	m.lastTarget = target
	m.mu.Unlock()

	if m.Err != nil {
		return Result{}, m.Err
	}

	if translation, ok := m.Translations[text]; ok {
		return Result{Text: translation, DetectedSource: m.DetectedSource}, nil
	}
	return Result{Text: "[" + text + "]", DetectedSource: m.DetectedSource}, nil
}

// CallCount returns the number of times Translate was called.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the arguments of the most recent call.
func (m *Mock) LastRequest() (text, source, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText, m.lastSource, m.lastTarget
}

// Reset resets the call count and recorded request.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastText, m.lastSource, m.lastTarget = "", "", ""
}

// Verify Mock implements Backend
var _ Backend = (*Mock)(nil)
