package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const googleSearchAPIURL = "https://www.googleapis.com/customsearch/v1"

// GoogleShoppingClient queries the Google Custom Search API. Calls go
// through a rate limiter sized for the free-tier daily quota.
type GoogleShoppingClient struct {
	apiKey         string
	searchEngineID string
	httpClient     *http.Client
	rateLimiter    *rate.Limiter
}

type googleSearchResponse struct {
	Items []Item `json:"items"`
}

func NewGoogleShoppingClient(apiKey, searchEngineID string) *GoogleShoppingClient {
	return &GoogleShoppingClient{
		apiKey:         apiKey,
		searchEngineID: searchEngineID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
	}
}

func (c *GoogleShoppingClient) Search(ctx context.Context, query string, num int) ([]Item, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.searchEngineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	fullURL := fmt.Sprintf("%s?%s", googleSearchAPIURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var searchResp googleSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return searchResp.Items, nil
}
