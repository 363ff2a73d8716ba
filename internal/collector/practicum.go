package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// PracticumFetcher implements Fetcher against the Practicum homework API.
type PracticumFetcher struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewPracticumFetcher creates a new fetcher with optional proxy support.
func NewPracticumFetcher(baseURL, token, proxyURL string) *PracticumFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PracticumFetcher{
		BaseURL: baseURL,
		Token:   token,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *PracticumFetcher) Name() string { return "practicum" }

// FetchStatuses requests homework statuses updated at or after fromDate.
func (f *PracticumFetcher) FetchStatuses(ctx context.Context, fromDate int64) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/user_api/homework_statuses/?from_date=%d", f.BaseURL, fromDate)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "OAuth "+f.Token)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch statuses: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read statuses body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch statuses: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
