package collector

import "context"

// Fetcher defines the interface for fetching homework review statuses.
// FetchStatuses returns the raw response body for records updated at or
// after fromDate (Unix seconds); decoding belongs to the caller.
type Fetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) ([]byte, error)
	Name() string
}
