package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/veznalabs/glot"
)

// defaultGTXBaseURL is Google's public translate endpoint used by the gtx client.
const defaultGTXBaseURL = "https://translate.googleapis.com/translate_a/single"

// GTXBackend translates via Google's public web endpoint (client=gtx).
// No API key is required; the endpoint throttles aggressively, so production
// use should wrap it in glot.NewRateLimitedBackend.
type GTXBackend struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// GTXConfig holds configuration for the gtx backend.
type GTXConfig struct {
	BaseURL   string        // Endpoint override, mainly for tests
	Timeout   time.Duration // HTTP timeout (default: 10s)
	UserAgent string        // User-Agent header (default: glot.UserAgent())
}

// NewGTXBackend creates a new gtx backend.
func NewGTXBackend(cfg GTXConfig) *GTXBackend {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGTXBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = glot.UserAgent()
	}

	return &GTXBackend{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// Translate implements Backend against the gtx endpoint.
func (b *GTXBackend) Translate(ctx context.Context, text, source, target string) (Result, error) {
	if source == "" {
		source = glot.SourceAuto
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Result{}, &glot.BackendError{Message: "building request failed", Cause: err}
	}
	req.Header.Set("User-Agent", b.userAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return Result{}, &glot.BackendError{Message: "request failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, &glot.BackendError{
			Message:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Retryable: isRetryableStatus(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &glot.BackendError{Message: "reading response failed", Cause: err, Retryable: true}
	}

	translated, detected, err := parseGTXResponse(body)
	if err != nil {
		return Result{}, err
	}

	// When the source was explicit the endpoint may omit detection.
	if detected == "" && source != glot.SourceAuto {
		detected = source
	}

	return Result{Text: translated, DetectedSource: detected}, nil
}

// parseGTXResponse decodes the endpoint's nested-array payload:
// [[["<translated>","<original>",...],...],null,"<detected>",...].
func parseGTXResponse(body []byte) (string, string, error) {
	var root []any
	if err := json.Unmarshal(body, &root); err != nil {
		return "", "", &glot.BackendError{Message: "invalid response payload", Cause: err}
	}
	if len(root) == 0 {
		return "", "", &glot.BackendError{Message: "empty response payload"}
	}

	sentences, ok := root[0].([]any)
	if !ok {
		return "", "", &glot.BackendError{Message: "unexpected response shape"}
	}

	var sb strings.Builder
	for _, item := range sentences {
		parts, ok := item.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if segment, ok := parts[0].(string); ok {
			sb.WriteString(segment)
		}
	}

	detected := ""
	if len(root) > 2 {
		if code, ok := root[2].(string); ok {
			detected = code
		}
	}

	return sb.String(), detected, nil
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// Verify GTXBackend implements Backend
var _ Backend = (*GTXBackend)(nil)
