// Package notaires fetches listing summaries from the notary federation's
// public ad API. Pagination is page/parPage based; past the last page the API
// answers HTTP 400, which is its end-of-data signal, not an error.
package notaires

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"immo-scraper/internal/httpx"
	"immo-scraper/internal/scrape"
)

type Client struct {
	BaseURL          string
	UserAgent        string
	TransactionTypes string // e.g. "VENTE,VNI,VAE"
	PageSize         int
	HTTP             *http.Client

	limiter *rate.Limiter
	retry   httpx.RetryConfig
}

func New(baseURL, userAgent, transactionTypes string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &Client{
		BaseURL:          baseURL,
		UserAgent:        userAgent,
		TransactionTypes: transactionTypes,
		PageSize:         pageSize,
		HTTP:             &http.Client{Timeout: 30 * time.Second},
		// ~5 req/s across all departement workers keeps the API happy
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		retry:   httpx.DefaultRetryConfig(),
	}
}

// FetchPage fetches one page of annonces for one departement.
// Returns scrape.ErrEndOfData on the API's 400 exhaustion signal.
func (c *Client) FetchPage(ctx context.Context, dept string, page int) ([]Annonce, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/annonces", nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("offset", "0")
		q.Set("page", strconv.Itoa(page))
		q.Set("parPage", strconv.Itoa(c.PageSize))
		q.Set("perimetre", "0")
		q.Set("departements", apiDepartement(dept))
		q.Set("typeTransaction", c.TransactionTypes)
		req.URL.RawQuery = q.Encode()
		httpx.SetBrowserHeaders(req, c.UserAgent)
		return req, nil
	}

	var out listResponse
	if err := httpx.DoJSON(ctx, c.HTTP, build, &out, c.retry); err != nil {
		var herr *httpx.HTTPError
		if errors.As(err, &herr) && herr.StatusCode == http.StatusBadRequest {
			return nil, scrape.ErrEndOfData
		}
		return nil, fmt.Errorf("notaires: departement %s page %d: %w", dept, page, err)
	}
	return out.Annonces, nil
}

// apiDepartement strips the zero padding the API does not expect
// ("04" -> "4"); "2A"/"2B" and overseas codes go through as-is.
func apiDepartement(dept string) string {
	if n, err := strconv.Atoi(dept); err == nil {
		return strconv.Itoa(n)
	}
	return dept
}
