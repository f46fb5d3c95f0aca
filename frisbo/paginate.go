package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
)

// PageEnvelope is the server's response shape for one page of a collection.
// CurrentPage and LastPage are pointers so an omitted field can be told
// apart from page zero; when either is absent the engine treats the
// response as a single page.
type PageEnvelope struct {
	Data        []json.RawMessage `json:"data"`
	CurrentPage *int              `json:"current_page"`
	LastPage    *int              `json:"last_page"`
	PerPage     int               `json:"per_page"`
	Total       int               `json:"total"`
}

// Paginate walks a paginated collection page by page, starting at startPage
// (pages are 1-based), and yields every record in server order. Each page is
// fetched only once the previous page's records have been consumed, and
// breaking out of the range stops further fetches. Any dispatch or decode
// failure is yielded once as the error value and ends the sequence. The
// sequence is not resumable: ranging over it again starts a fresh traversal
// from startPage.
func (c *Client) Paginate(ctx context.Context, path string, query url.Values, startPage int) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		start := startPage
		if start < 1 {
			start = 1
		}
		for page := start; ; page++ {
			pageQuery := url.Values{}
			for key, values := range query {
				pageQuery[key] = values
			}
			pageQuery.Set("page", strconv.Itoa(page))

			body, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: pageQuery})
			if err != nil {
				yield(nil, err)
				return
			}

			var envelope PageEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				yield(nil, fmt.Errorf("failed to decode page %d of %s: %w", page, path, err))
				return
			}

			currentPage, lastPage := page, page
			if envelope.CurrentPage != nil {
				currentPage = *envelope.CurrentPage
			}
			if envelope.LastPage != nil {
				lastPage = *envelope.LastPage
			}

			c.hooks.pageFetched(path, currentPage, lastPage, envelope.PerPage, envelope.Total)
			c.logger.Debug().
				Str("path", path).
				Int("current_page", currentPage).
				Int("last_page", lastPage).
				Int("per_page", envelope.PerPage).
				Int("total", envelope.Total).
				Msg("Fetched page")

			for _, item := range envelope.Data {
				if !yield(item, nil) {
					return
				}
			}

			// Trust the server-reported boundary.
			if currentPage >= lastPage {
				return
			}
		}
	}
}

// paginateAs decodes each paginated record into T.
func paginateAs[T any](c *Client, ctx context.Context, path string, query url.Values, startPage int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for item, err := range c.Paginate(ctx, path, query, startPage) {
			if err != nil {
				yield(zero, err)
				return
			}
			var record T
			if err := json.Unmarshal(item, &record); err != nil {
				yield(zero, fmt.Errorf("failed to decode record from %s: %w", path, err))
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}
