// Package bienici fetches ads from the Bien'ici aggregator. The search
// filter travels URL-encoded as a JSON blob in the query string, together
// with an access_token:session pair. Both halves of the pair expire and are
// supplied by the operator; this package never refreshes them. The API has no
// explicit end-of-pagination status; an empty or short page is the signal.
package bienici

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"immo-scraper/internal/httpx"
)

type Client struct {
	BaseURL     string
	UserAgent   string
	AccessToken string // opaque, expirable
	SessionID   string // opaque, expirable
	PageSize    int

	// Filter template fields, normally from config.Filters.
	FilterType    string
	PropertyTypes []string
	SortBy        string
	SortOrder     string

	HTTP    *http.Client
	limiter *rate.Limiter
	retry   httpx.RetryConfig
}

func New(baseURL, userAgent, accessToken, sessionID string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = 24
	}
	return &Client{
		BaseURL:       baseURL,
		UserAgent:     userAgent,
		AccessToken:   accessToken,
		SessionID:     sessionID,
		PageSize:      pageSize,
		FilterType:    "buy",
		PropertyTypes: []string{"house", "flat", "loft", "castle", "townhouse"},
		SortBy:        "relevance",
		SortOrder:     "desc",
		HTTP:          &http.Client{Timeout: 20 * time.Second},
		limiter:       rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		retry:         httpx.DefaultRetryConfig(),
	}
}

// searchFilter is the JSON filter blob the site expects in the query string.
type searchFilter struct {
	Size          int      `json:"size"`
	From          int      `json:"from"`
	FilterType    string   `json:"filterType"`
	PropertyType  []string `json:"propertyType"`
	Page          int      `json:"page"`
	SortBy        string   `json:"sortBy"`
	SortOrder     string   `json:"sortOrder"`
	OnTheMarket   []bool   `json:"onTheMarket"`
	NewProperty   bool     `json:"newProperty"`
	BlurInfoTypes []string `json:"blurInfoType"`
	ZoneIDs       []string `json:"zoneIds"`
}

type adsResponse struct {
	RealEstateAds []map[string]any `json:"realEstateAds"`
}

// FetchPage fetches one page of raw ads for one departement. Ads stay as
// loose maps: the payload's field set varies release-to-release, and the
// rename table on the cleaning side is where that variance is absorbed.
func (c *Client) FetchPage(ctx context.Context, dept string, page int) ([]map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	filter := searchFilter{
		Size:          c.PageSize,
		From:          (page - 1) * c.PageSize,
		FilterType:    c.FilterType,
		PropertyType:  c.PropertyTypes,
		Page:          page,
		SortBy:        c.SortBy,
		SortOrder:     c.SortOrder,
		OnTheMarket:   []bool{true},
		NewProperty:   false,
		BlurInfoTypes: []string{"disk", "exact"},
		ZoneIDs:       []string{"dep-" + dept},
	}
	blob, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("bienici: marshal filter: %w", err)
	}

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/realEstateAds.json", nil)
		if err != nil {
			return nil, err
		}
		q := url.Values{}
		q.Set("filters", string(blob))
		q.Set("extensionType", "extendedIfNoResult")
		q.Set("access_token", c.AccessToken+":"+c.SessionID)
		q.Set("id", c.SessionID)
		req.URL.RawQuery = q.Encode()
		httpx.SetBrowserHeaders(req, c.UserAgent)
		return req, nil
	}

	var out adsResponse
	if err := httpx.DoJSON(ctx, c.HTTP, build, &out, c.retry); err != nil {
		return nil, fmt.Errorf("bienici: departement %s page %d: %w", dept, page, err)
	}
	return out.RealEstateAds, nil
}
