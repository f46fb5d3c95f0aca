package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
)

// InboundService handles inbound inventory requests: stock announced to a
// warehouse ahead of delivery, moved through an approval and counting
// workflow.
type InboundService struct {
	client *Client
}

// List iterates over the organization's inbound requests as raw JSON
// documents.
func (s *InboundService) List(ctx context.Context, organizationID int, query url.Values) iter.Seq2[json.RawMessage, error] {
	path := fmt.Sprintf("/v1/organizations/%d/inventory", organizationID)
	return s.client.Paginate(ctx, path, query, 1)
}

// Create announces a new inbound delivery to a warehouse.
func (s *InboundService) Create(ctx context.Context, organizationID, warehouseID int, products []InventoryLevel, extra map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/inventory", organizationID),
		Body: map[string]any{
			"warehouse_id": warehouseID,
			"products":     products,
		},
		Extra: extra,
	})
}

// action triggers one of the inbound workflow verbs.
func (s *InboundService) action(ctx context.Context, organizationID, inventoryRequestID int, verb string) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/inventory/%d/actions/%s", organizationID, inventoryRequestID, verb),
	})
}

// SendToWms forwards the inbound request to the warehouse management system.
func (s *InboundService) SendToWms(ctx context.Context, organizationID, inventoryRequestID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, inventoryRequestID, "sendToWms")
}

// Approve approves the inbound request.
func (s *InboundService) Approve(ctx context.Context, organizationID, inventoryRequestID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, inventoryRequestID, "approve")
}

// Complete marks the inbound request's counting as complete.
func (s *InboundService) Complete(ctx context.Context, organizationID, inventoryRequestID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, inventoryRequestID, "complete")
}

// Confirm confirms the counted quantities.
func (s *InboundService) Confirm(ctx context.Context, organizationID, inventoryRequestID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, inventoryRequestID, "confirm")
}

// Reprocess re-runs a failed inbound request.
func (s *InboundService) Reprocess(ctx context.Context, organizationID, inventoryRequestID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, inventoryRequestID, "reprocess")
}
