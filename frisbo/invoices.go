package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
)

// InvoicesService handles invoice operations.
type InvoicesService struct {
	client *Client
}

// List iterates over the organization's invoices as raw JSON documents.
func (s *InvoicesService) List(ctx context.Context, organizationID int, query url.Values) iter.Seq2[json.RawMessage, error] {
	path := fmt.Sprintf("/v1/organizations/%d/invoices", organizationID)
	return s.client.Paginate(ctx, path, query, 1)
}

// ListSeries returns the organization's invoice numbering series.
func (s *InvoicesService) ListSeries(ctx context.Context, organizationID int) ([]InvoiceSeries, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/organizations/%d/invoices/series", organizationID),
	})
	if err != nil {
		return nil, err
	}

	var series []InvoiceSeries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, fmt.Errorf("failed to decode invoice series: %w", err)
	}
	return series, nil
}
