package idscrape

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single request for url and returns the response body.
	// Any failure, including a non-200 status, is returned as an error
	// (typically a *FetchError); the body is only meaningful when err is nil.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
