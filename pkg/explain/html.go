package explain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxHTMLSize bounds documents read by ExtractHTML.
const maxHTMLSize = 10 * 1024 * 1024

var (
	// (?s) allows dot to match newlines
	// (?i) makes it case-insensitive
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses (<rp>...</rp>)
// so readability does not emit the annotation next to the base text.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

// Document is the readable text of an HTML page.
type Document struct {
	Title string
	Text  string
}

// ExtractHTML reads an HTML page and returns its main article text. pageURL may be nil.
func ExtractHTML(r io.Reader, pageURL *url.URL) (Document, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxHTMLSize+1))
	if err != nil {
		return Document{}, fmt.Errorf("read html: %w", err)
	}
	if len(body) > maxHTMLSize {
		return Document{}, fmt.Errorf("html document exceeds %d bytes", maxHTMLSize)
	}
	if pageURL == nil {
		pageURL = &url.URL{Scheme: "file", Path: "/"}
	}
	article, err := readability.FromReader(bytes.NewReader(SanitizeRuby(body)), pageURL)
	if err != nil {
		return Document{}, fmt.Errorf("extract article: %w", err)
	}
	return Document{Title: article.Title, Text: article.TextContent}, nil
}

// FetchTimeout bounds a whole Fetch request.
const FetchTimeout = 30 * time.Second

// Fetch downloads pageURL and extracts its article text.
func Fetch(ctx context.Context, pageURL string) (Document, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Document{}, fmt.Errorf("parse url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Document{}, fmt.Errorf("create request: %w", err)
	}
	// Some news sites reject clients that do not look like a browser.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")

	client := &http.Client{Timeout: FetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("fetch %s: status code %d", u, resp.StatusCode)
	}
	if resp.ContentLength > maxHTMLSize {
		return Document{}, fmt.Errorf("content-length %d exceeds limit of %d bytes", resp.ContentLength, maxHTMLSize)
	}
	return ExtractHTML(resp.Body, u)
}
