package frisbo

import "time"

// Hooks receives structured notifications about client activity. All fields
// are optional; nil callbacks are skipped. Callbacks run synchronously on
// the calling goroutine, so implementations should return quickly.
type Hooks struct {
	// RequestStarted fires before a request is sent.
	RequestStarted func(method, url string)

	// RequestCompleted fires after a response (of any status) is received.
	RequestCompleted func(method, path string, status int, elapsed time.Duration)

	// PageFetched fires after each page of a paginated traversal is decoded.
	PageFetched func(path string, currentPage, lastPage, perPage, total int)

	// AuthSucceeded fires after a successful login. expiresAt is the zero
	// time when the server did not report a token lifetime.
	AuthSucceeded func(expiresAt time.Time)

	// AuthFailed fires when a login attempt fails.
	AuthFailed func(err error)
}

func (h *Hooks) requestStarted(method, url string) {
	if h != nil && h.RequestStarted != nil {
		h.RequestStarted(method, url)
	}
}

func (h *Hooks) requestCompleted(method, path string, status int, elapsed time.Duration) {
	if h != nil && h.RequestCompleted != nil {
		h.RequestCompleted(method, path, status, elapsed)
	}
}

func (h *Hooks) pageFetched(path string, currentPage, lastPage, perPage, total int) {
	if h != nil && h.PageFetched != nil {
		h.PageFetched(path, currentPage, lastPage, perPage, total)
	}
}

func (h *Hooks) authSucceeded(expiresAt time.Time) {
	if h != nil && h.AuthSucceeded != nil {
		h.AuthSucceeded(expiresAt)
	}
}

func (h *Hooks) authFailed(err error) {
	if h != nil && h.AuthFailed != nil {
		h.AuthFailed(err)
	}
}
