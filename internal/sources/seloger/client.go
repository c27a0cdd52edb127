// Package seloger fetches classifieds from SeLoger. The flow is two-step per
// page: a POST search that returns classified ids for a place, then a detail
// fetch for those ids. Every call must carry a browser session's cookies
// (datadome protection); the cookie header is opaque, expirable configuration
// owned by the operator; when it goes stale, requests start failing and the
// operator captures a fresh one.
package seloger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"immo-scraper/internal/httpx"
)

type Client struct {
	BaseURL   string
	UserAgent string
	Cookie    string // raw Cookie header value, opaque
	PageSize  int

	// Search criteria, normally from config.Filters.
	DistributionTypes []string
	EstateTypes       []string
	ProjectTypes      []string

	HTTP    *http.Client
	limiter *rate.Limiter
	retry   httpx.RetryConfig

	places placeCache
}

func New(baseURL, userAgent, cookie string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = 30
	}
	return &Client{
		BaseURL:           baseURL,
		UserAgent:         userAgent,
		Cookie:            cookie,
		PageSize:          pageSize,
		DistributionTypes: []string{"Buy", "Buy_Auction", "Compulsory_Auction"},
		EstateTypes:       []string{"House", "Apartment"},
		ProjectTypes:      []string{"Life_Annuity", "New_Build", "Projected", "Resale"},
		HTTP:              &http.Client{Timeout: 20 * time.Second},
		limiter:           rate.NewLimiter(rate.Every(400*time.Millisecond), 1),
		retry:             httpx.DefaultRetryConfig(),
	}
}

type searchBody struct {
	Criteria struct {
		DistributionTypes []string `json:"distributionTypes"`
		EstateTypes       []string `json:"estateTypes"`
		Location          struct {
			PlaceIDs []string `json:"placeIds"`
		} `json:"location"`
		ProjectTypes []string `json:"projectTypes"`
	} `json:"criteria"`
	Paging struct {
		Order string `json:"order"`
		Page  int    `json:"page"`
		Size  int    `json:"size"`
	} `json:"paging"`
}

type searchResponse struct {
	Classifieds []struct {
		ID json.Number `json:"id"`
	} `json:"classifieds"`
}

// FetchPage fetches one page of annonces for one departement: search for the
// page's classified ids, then pull their details. An empty id page means the
// departement is exhausted.
func (c *Client) FetchPage(ctx context.Context, dept string, page int) ([]Annonce, error) {
	placeID, err := c.PlaceID(ctx, dept)
	if err != nil {
		return nil, err
	}

	ids, err := c.searchIDs(ctx, placeID, page)
	if err != nil {
		return nil, fmt.Errorf("seloger: departement %s page %d: %w", dept, page, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	ads, err := c.fetchDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("seloger: departement %s page %d details: %w", dept, page, err)
	}
	return ads, nil
}

func (c *Client) searchIDs(ctx context.Context, placeID string, page int) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body searchBody
	body.Criteria.DistributionTypes = c.DistributionTypes
	body.Criteria.EstateTypes = c.EstateTypes
	body.Criteria.Location.PlaceIDs = []string{placeID}
	body.Criteria.ProjectTypes = c.ProjectTypes
	body.Paging.Order = "Default"
	body.Paging.Page = page
	body.Paging.Size = c.PageSize

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/serp-bff/search", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		return req, nil
	}

	var out searchResponse
	if err := httpx.DoJSON(ctx, c.HTTP, build, &out, c.retry); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Classifieds))
	for _, cl := range out.Classifieds {
		if cl.ID.String() != "" {
			ids = append(ids, cl.ID.String())
		}
	}
	return ids, nil
}

func (c *Client) fetchDetails(ctx context.Context, ids []string) ([]Annonce, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/classifiedList/"+strings.Join(ids, ","), nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return req, nil
	}

	var raw []map[string]any
	if err := httpx.DoJSON(ctx, c.HTTP, build, &raw, c.retry); err != nil {
		return nil, err
	}

	ads := make([]Annonce, 0, len(raw))
	for _, m := range raw {
		ads = append(ads, Extract(m))
	}
	return ads, nil
}

func (c *Client) setHeaders(req *http.Request) {
	httpx.SetBrowserHeaders(req, c.UserAgent)
	if c.Cookie != "" {
		req.Header.Set("Cookie", c.Cookie)
	}
}
