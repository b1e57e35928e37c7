package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/veznalabs/glot"
)

// defaultMobileBaseURL is the no-script mobile page of Google Translate.
const defaultMobileBaseURL = "https://translate.google.com"

// MobileBackend scrapes the translate.google.com mobile page. It survives
// when the gtx endpoint is blocked, at the cost of never reporting a detected
// source language (the page has no detection channel), which disables the
// orchestrator's no-op heuristic for auto-detect requests.
type MobileBackend struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// MobileConfig holds configuration for the mobile scraping backend.
type MobileConfig struct {
	BaseURL   string        // Endpoint override, mainly for tests
	Timeout   time.Duration // HTTP timeout (default: 10s)
	UserAgent string        // User-Agent header (default: glot.UserAgent())
}

// NewMobileBackend creates a new mobile scraping backend.
func NewMobileBackend(cfg MobileConfig) *MobileBackend {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMobileBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = glot.UserAgent()
	}

	return &MobileBackend{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// Translate implements Backend by scraping the mobile result page.
func (b *MobileBackend) Translate(ctx context.Context, text, source, target string) (Result, error) {
	if source == "" {
		source = glot.SourceAuto
	}

	q := url.Values{}
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/m?"+q.Encode(), nil)
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

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Result{}, &glot.BackendError{Message: "parsing result page failed", Cause: err}
	}

	sel := doc.Find("div.result-container")
	if sel.Length() == 0 {
		return Result{}, &glot.BackendError{Message: "result container not found in page"}
	}

	var sb strings.Builder
	for _, node := range sel.Nodes {
		collectText(node, &sb)
	}

	detected := ""
	if source != glot.SourceAuto {
		detected = source
	}

	return Result{Text: sb.String(), DetectedSource: detected}, nil
}

// collectText appends the text content of n and its descendants.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Verify MobileBackend implements Backend
var _ Backend = (*MobileBackend)(nil)
