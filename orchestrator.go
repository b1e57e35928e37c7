package glot

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Orchestrator is the translation entry point. It validates input, delegates
// to the shared backend instance, inspects the result for silent no-op
// failures, and normalizes every failure into one of the fixed user messages.
//
// The backend is constructed at most once per Orchestrator, on the first
// non-trivial call, and reused for the process lifetime. Construction is
// guarded so concurrent callers never race it.
type Orchestrator struct {
	factory BackendFactory
	cache   TranslationCache
	logger  zerolog.Logger

	once    sync.Once
	backend Backend
	initErr error
}

// Option is a functional option for configuring the Orchestrator.
type Option func(*Orchestrator)

// WithCache sets a translation result cache. Only successful results are
// cached; failures always go back to the backend.
func WithCache(cache TranslationCache) Option {
	return func(o *Orchestrator) {
		o.cache = cache
	}
}

// WithLogger sets the logger for backend diagnostics. Diagnostic detail is
// logged here and never included in user-facing messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// New creates an Orchestrator around a backend factory. Pass a nil factory
// when no backend implementation is available; every call will then return
// an *UnavailableError without attempting a network call.
func New(factory BackendFactory, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		factory: factory,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Available reports whether a backend factory was supplied at construction.
func (o *Orchestrator) Available() bool {
	return o.factory != nil
}

// Translate translates text from source (an ISO code or SourceAuto) into
// target. Source and target are passed to the backend verbatim; membership in
// the language registry is the backend's concern.
//
// Empty or whitespace-only input short-circuits to Result{"", "en"} without
// touching the backend. On failure the returned Result carries a fallback
// DetectedSource and the error maps to a fixed message via UserMessage.
// No retries happen here; retrying is the caller's decision.
func (o *Orchestrator) Translate(ctx context.Context, text, source, target string) (Result, error) {
	if o.factory == nil {
		return Result{DetectedSource: source}, &UnavailableError{}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Text: "", DetectedSource: "en"}, nil
	}

	key := CacheKey(HashText(text), source, target)
	if o.cache != nil {
		if raw, ok := o.cache.Get(key); ok {
			if res, err := decodeResult(raw); err == nil {
				return res, nil
			}
		}
	}

	b, err := o.instance()
	if err != nil {
		o.logger.Error().Err(err).Msg("translation backend construction failed")
		return Result{DetectedSource: source}, &UnavailableError{Cause: err}
	}

	out, err := b.Translate(ctx, text, source, target)
	if err != nil {
		o.logger.Error().
			Err(err).
			Str("source", source).
			Str("target", target).
			Msg("translation request failed")
		return Result{DetectedSource: fallbackSource(source)}, asBackendError(err)
	}

	// A detected source that differs from the target plus an unchanged text
	// means the service degraded silently (rate limiting does this). An
	// unchanged result is legitimate when the text is already in the target
	// language, so that case is exempt.
	detected := out.DetectedSource
	if detected != "" && !strings.EqualFold(detected, target) && strings.TrimSpace(out.Text) == trimmed {
		o.logger.Warn().
			Str("detected", detected).
			Str("target", target).
			Msg("backend returned the input unchanged")
		return Result{DetectedSource: detected}, &NoOpError{DetectedSource: detected}
	}

	res := Result{Text: out.Text, DetectedSource: detected}
	if o.cache != nil {
		_ = o.cache.Set(key, encodeResult(res)) // Ignore cache set errors
	}

	return res, nil
}

// instance returns the shared backend, constructing it on first use.
// A factory failure is latched: the capability stays unavailable afterwards.
func (o *Orchestrator) instance() (Backend, error) {
	o.once.Do(func() {
		o.backend, o.initErr = o.factory()
		if o.initErr == nil && o.backend == nil {
			o.initErr = errors.New("backend factory returned nil")
		}
	})
	return o.backend, o.initErr
}

// fallbackSource picks the source code reported on hard backend failures.
func fallbackSource(source string) string {
	if source != SourceAuto {
		return source
	}
	return "en"
}

// asBackendError wraps arbitrary backend failures into *BackendError,
// preserving typed errors that already are one.
func asBackendError(err error) error {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return err
	}
	return &BackendError{Message: "backend call failed", Cause: err}
}

// cachedResult is the JSON shape stored in the translation cache.
type cachedResult struct {
	Text           string `json:"text"`
	DetectedSource string `json:"src"`
}

func encodeResult(res Result) string {
	data, _ := json.Marshal(cachedResult{Text: res.Text, DetectedSource: res.DetectedSource})
	return string(data)
}

func decodeResult(raw string) (Result, error) {
	var c cachedResult
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Result{}, err
	}
	return Result{Text: c.Text, DetectedSource: c.DetectedSource}, nil
}
