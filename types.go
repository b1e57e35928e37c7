// Package glot orchestrates text translation against pluggable remote backends.
package glot

import "context"

// SourceAuto is the sentinel source specifier requesting language auto-detection.
const SourceAuto = "auto"

// Language is an immutable (display name, ISO code) pair.
type Language struct {
	Name string // Display name (e.g., "Turkish")
	Code string // ISO language code (e.g., "tr")
}

// BackendResult is the raw output of a translation backend call.
type BackendResult struct {
	Text           string // Translated text
	DetectedSource string // Source language the backend detected (may be empty)
}

// Backend is the interface for remote translation backends.
type Backend interface {
	// Translate translates text from source (or SourceAuto) into target.
	// Implementations return a *BackendError on any transport or protocol fault.
	Translate(ctx context.Context, text, source, target string) (BackendResult, error)
}

// BackendFactory constructs the process-wide backend instance. The
// Orchestrator invokes it at most once, on the first non-trivial call.
// A nil factory marks the translation capability as unavailable.
type BackendFactory func() (Backend, error)

// Result is the caller-facing outcome of a translation.
// On failure the Orchestrator still fills DetectedSource with the best
// available fallback so callers can keep their language selection coherent.
type Result struct {
	Text           string // Translated text ("" on failure or empty input)
	DetectedSource string // Detected source code, or the fallback on failure
}

// Outcome pairs a Result with its error for asynchronous delivery.
type Outcome struct {
	Result Result
	Err    error
}

// Fixed user-facing messages. These are the only strings ever shown to users
// for translation failures; diagnostic detail goes to the logger.
const (
	// MsgUnavailable is shown when no backend implementation exists at all.
	MsgUnavailable = "Translation library is not installed on the server."

	// MsgBackendError is shown when a backend call fails in transit.
	MsgBackendError = "Translation error: Could not connect to the service. " +
		"Please check your internet connection or try again later."

	// MsgNoOp is shown when the backend silently returned the input unchanged.
	MsgNoOp = "Translation failed. The service returned the original text. " +
		"This may be due to a temporary network issue or an unsupported language."
)

// TranslationCache is the interface for caching translation results.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
