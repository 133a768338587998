// Package mediawiki implements the upstream article listing and content
// queries against the MediaWiki action API.
package mediawiki

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pwalen/vitalwiki"
)

// DefaultBaseURL is the English Wikipedia action API endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies the client per the API etiquette guidelines.
const defaultUserAgent = "vitalwiki/1.0 (https://github.com/pwalen/vitalwiki)"

// Compile-time interface verification.
var (
	_ vitalwiki.LinkSource = (*Client)(nil)
	_ vitalwiki.PageSource = (*Client)(nil)
)

// Client queries the MediaWiki action API. Requests are rate limited
// with a token bucket (burst of 1) to stay polite toward the API.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRequestsPerSecond sets the request rate limit. Defaults to 5 rps.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// NewClient creates a Client for the English Wikipedia API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		client:    &http.Client{Timeout: DefaultTimeout},
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		limiter:   rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// linksResponse is the subset of the action=query prop=links payload the
// client reads.
type linksResponse struct {
	Continue struct {
		PLContinue string `json:"plcontinue"`
	} `json:"continue"`
	Query struct {
		Pages []struct {
			Missing bool `json:"missing"`
			Links   []struct {
				NS    int    `json:"ns"`
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Links pages through the links listing of listingPage, following the
// continuation token until the listing is exhausted, and returns the
// site-relative paths of all main-namespace article links. A failure on
// any page of the listing aborts the whole call; no partial listing is
// ever returned.
func (c *Client) Links(ctx context.Context, listingPage string) ([]string, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"titles":        {listingPage},
		"prop":          {"links"},
		"plnamespace":   {"0"},
		"pllimit":       {"max"},
	}

	var paths []string
	for {
		var res linksResponse
		if err := c.get(ctx, params, &res); err != nil {
			return nil, err
		}
		if res.Error != nil {
			return nil, vitalwiki.Errorf(vitalwiki.ENOTFOUND, "listing %q: %s", listingPage, res.Error.Info)
		}

		for _, page := range res.Query.Pages {
			if page.Missing {
				return nil, vitalwiki.Errorf(vitalwiki.ENOTFOUND, "listing page %q does not exist", listingPage)
			}
			for _, link := range page.Links {
				if link.NS != 0 {
					continue
				}
				if strings.Contains(link.Title, ":") || link.Title == "Main Page" {
					continue
				}
				paths = append(paths, vitalwiki.ArticlePath(link.Title))
			}
		}

		if res.Continue.PLContinue == "" {
			return paths, nil
		}
		params.Set("plcontinue", res.Continue.PLContinue)
	}
}

// parseResponse is the subset of the action=parse payload the client
// reads.
type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error *apiError `json:"error"`
}

// Page fetches the rendered HTML and display title of one article.
func (c *Client) Page(ctx context.Context, title string) (*vitalwiki.ArticlePage, error) {
	params := url.Values{
		"action":        {"parse"},
		"format":        {"json"},
		"formatversion": {"2"},
		"page":          {title},
		"prop":          {"text|displaytitle"},
		"redirects":     {"1"},
	}

	var res parseResponse
	if err := c.get(ctx, params, &res); err != nil {
		return nil, err
	}
	if res.Error != nil {
		return nil, vitalwiki.Errorf(vitalwiki.ENOTFOUND, "article %q: %s", title, res.Error.Info)
	}

	return &vitalwiki.ArticlePage{
		Title: res.Parse.Title,
		HTML:  res.Parse.Text,
	}, nil
}

// get performs one rate-limited API request and decodes the JSON body
// into out.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "wikipedia api unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "wikipedia api returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return vitalwiki.Errorf(vitalwiki.EUNAVAILABLE, "reading wikipedia api response: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return vitalwiki.Errorf(vitalwiki.EINTERNAL, "decoding wikipedia api response: %v", err)
	}
	return nil
}
