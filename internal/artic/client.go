package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://api.artic.edu"
	DefaultUserAgent = "artpick/0.1 (https://github.com/llehouerou/artpick)"

	searchPath   = "/api/v1/artists/search"
	maxBodyBytes = 1 << 20
	maxDetailLen = 512
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64 // <= 0 disables pacing
}

// Client performs artist searches against the Art Institute of Chicago API.
// Each call issues exactly one GET request; failures are never retried.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new search client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// SearchArtists returns the artists matching query, in the order the API returns them.
func (c *Client) SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: KindNetwork, Detail: "rate limiter: " + err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Detail: reqURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Detail: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Detail: fmt.Sprintf("read response: %v", err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindBadResponse, Status: resp.StatusCode, Detail: excerpt(body)}
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{
			Kind:   KindDecoding,
			Detail: fmt.Sprintf("decode search response: %v, data: %s", err, excerpt(body)),
			Err:    err,
		}
	}
	if result.Data == nil {
		return nil, &Error{
			Kind:   KindDecoding,
			Detail: "decode search response: missing data field, data: " + excerpt(body),
		}
	}

	return convertArtists(result.Data), nil
}

// searchURL builds the request URL, percent-encoding the query.
func (c *Client) searchURL(query string) (string, error) {
	raw := c.baseURL + searchPath
	u, err := url.Parse(raw)
	if err != nil {
		return "", &Error{Kind: KindInvalidURL, Detail: raw, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &Error{Kind: KindInvalidURL, Detail: raw}
	}

	params := url.Values{}
	params.Set("q", query)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func convertArtists(results []artistResult) []Artist {
	artists := make([]Artist, 0, len(results))
	for _, r := range results {
		artists = append(artists, Artist{ID: r.ID, Title: r.Title})
	}
	return artists
}

func excerpt(body []byte) string {
	if len(body) == 0 {
		return "No data"
	}
	s := string(body)
	if len(s) > maxDetailLen {
		return s[:maxDetailLen] + "..."
	}
	return s
}
