package frisbo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request describes one API call. Path is appended to the client's base URL
// as-is, so it must start with a slash. Extra fields are merged over the
// marshaled Body without validation; validation is the caller's concern.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
	Extra  map[string]any
}

// Do dispatches one authenticated request and returns the raw response body.
// The bearer token is attached only when the session holds one; callers that
// need a guaranteed valid session should call EnsureAuthenticated first.
// Any status >= 400 is classified into the package's error types and never
// returned as a body.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	body, err := mergeExtra(req.Body, req.Extra)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	c.hooks.requestStarted(req.Method, requestURL)
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", requestURL).
		Bool("has_body", bodyReader != nil).
		Msg("Dispatching API request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("failed to read response body: %s", err)}
	}

	elapsed := time.Since(start)
	c.hooks.requestCompleted(req.Method, req.Path, resp.StatusCode, elapsed)
	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("API response")

	if resp.StatusCode >= 400 {
		return nil, c.classify(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// mergeExtra merges extra fields over the JSON representation of body.
func mergeExtra(body any, extra map[string]any) (any, error) {
	if len(extra) == 0 {
		return body, nil
	}

	merged := make(map[string]any, len(extra))
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(encoded, &merged); err != nil {
			return nil, err
		}
	}
	maps.Copy(merged, extra)
	return merged, nil
}

// classify turns an error response into the matching typed error. The
// message comes from the error_description field, then message, then the
// raw body, then a generic HTTP <status> string.
func (c *Client) classify(status int, body []byte) error {
	var payload map[string]any
	var message string
	if err := json.Unmarshal(body, &payload); err == nil {
		if desc, ok := payload["error_description"].(string); ok && desc != "" {
			message = desc
		} else if msg, ok := payload["message"].(string); ok && msg != "" {
			message = msg
		} else {
			message = strings.TrimSpace(string(body))
		}
	} else {
		payload = nil
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}

	c.logger.Error().Int("status", status).Str("message", message).Msg("API error")

	apiErr := APIError{Message: message, StatusCode: status, Response: payload}
	switch status {
	case http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	case http.StatusTooManyRequests:
		c.logger.Warn().Str("message", message).Msg("Rate limit exceeded")
		return &RateLimitError{APIError: apiErr}
	default:
		return &apiErr
	}
}
