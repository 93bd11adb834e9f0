// Package api is the client for the country-leaders API and for reference
// page downloads. One Client carries a single shared http.Client for both,
// which net/http documents as safe for concurrent use, so the enrichment
// workers may all fetch through it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/leaders-pipeline/models"
)

// Credential is the opaque cookie set the API hands out on /cookie. It is
// replaced wholesale on refresh; there is no expiry tracking.
type Credential []*http.Cookie

// Client talks to the country-leaders API and fetches reference pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	credential Credential
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// AcquireCookie fetches a fresh credential from the /cookie endpoint and
// stores it for subsequent calls.
func (c *Client) AcquireCookie(ctx context.Context) (Credential, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cookie", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build cookie request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cookie: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch cookie, status code: %d", resp.StatusCode)
	}

	c.credential = resp.Cookies()
	return c.credential, nil
}

// RefreshCookie repeats the cookie request and replaces the stored
// credential. It does not invalidate anything server-side.
func (c *Client) RefreshCookie(ctx context.Context) (Credential, error) {
	return c.AcquireCookie(ctx)
}

// Countries returns the country codes the API knows about, in the order the
// API lists them.
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	body, err := c.getAuthenticated(ctx, c.baseURL+"/countries")
	if err != nil {
		return nil, err
	}

	var countries []string
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("failed to parse countries response: %w", err)
	}
	return countries, nil
}

// Leaders returns the raw leader records for a country code, in the order
// the API lists them.
func (c *Client) Leaders(ctx context.Context, countryCode string) ([]models.Leader, error) {
	params := url.Values{"country": {countryCode}}
	body, err := c.getAuthenticated(ctx, c.baseURL+"/leaders?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var leaders []models.Leader
	if err := json.Unmarshal(body, &leaders); err != nil {
		return nil, fmt.Errorf("failed to parse leaders response for %q: %w", countryCode, err)
	}
	return leaders, nil
}

// GetPageBytes fetches an arbitrary page without the API credential.
func (c *Client) GetPageBytes(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build page request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return bodyBytes, nil
}

// GetPage fetches a page and parses it into a goquery document.
func (c *Client) GetPage(ctx context.Context, rawURL string) (*goquery.Document, error) {
	bodyBytes, err := c.GetPageBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// getAuthenticated issues a GET with the stored credential attached and
// returns the response body.
func (c *Client) getAuthenticated(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	for _, cookie := range c.credential {
		req.AddCookie(cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s failed, status code: %d", fullURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
