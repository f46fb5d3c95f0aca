package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
)

// OrdersService handles order operations. Orders are returned as raw JSON
// documents; the order shape carries many optional, channel-dependent
// fields and callers typically only read a handful of them.
type OrdersService struct {
	client *Client
}

// CreateOrderRequest is the body for Orders.Create.
type CreateOrderRequest struct {
	OrderReference   string         `json:"order_reference"`
	ShippingCustomer Customer       `json:"shipping_customer"`
	ShippingAddress  Address        `json:"shipping_address"`
	Products         []OrderProduct `json:"products"`
	ChannelID        int            `json:"channel_id,omitempty"`
	WarehouseID      int            `json:"warehouse_id,omitempty"`
}

// List iterates over the organization's orders. Query parameters (status
// filters, date ranges, sorting) pass straight through to the API.
func (s *OrdersService) List(ctx context.Context, organizationID int, query url.Values) iter.Seq2[json.RawMessage, error] {
	path := fmt.Sprintf("/v1/organizations/%d/orders", organizationID)
	return s.client.Paginate(ctx, path, query, 1)
}

// Get returns one order.
func (s *OrdersService) Get(ctx context.Context, organizationID, orderID int) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/organizations/%d/orders/%d", organizationID, orderID),
	})
}

// Create places a new order. Fields beyond the request struct go in extra.
func (s *OrdersService) Create(ctx context.Context, organizationID int, order CreateOrderRequest, extra map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/orders", organizationID),
		Body:   order,
		Extra:  extra,
	})
}

// Update patches the given order fields.
func (s *OrdersService) Update(ctx context.Context, organizationID, orderID int, fields map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/v1/organizations/%d/orders/%d", organizationID, orderID),
		Body:   fields,
	})
}

// action triggers one of the order lifecycle verbs.
func (s *OrdersService) action(ctx context.Context, organizationID, orderID int, verb string, body any) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/orders/%d/actions/%s", organizationID, orderID, verb),
		Body:   body,
	})
}

// Cancel cancels an order.
func (s *OrdersService) Cancel(ctx context.Context, organizationID, orderID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, orderID, "cancel", nil)
}

// Reprocess re-runs fulfillment for an order stuck in an error state.
func (s *OrdersService) Reprocess(ctx context.Context, organizationID, orderID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, orderID, "reprocess", nil)
}

// ConfirmFulfillment confirms the order's fulfillment.
func (s *OrdersService) ConfirmFulfillment(ctx context.Context, organizationID, orderID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, orderID, "confirmFulfillment", nil)
}

// Ship marks the order as shipped, optionally recording the air waybill
// number.
func (s *OrdersService) Ship(ctx context.Context, organizationID, orderID int, awb string) (json.RawMessage, error) {
	var body any
	if awb != "" {
		body = map[string]string{"awb": awb}
	}
	return s.action(ctx, organizationID, orderID, "shipOrder", body)
}

// Deliver marks the order as delivered.
func (s *OrdersService) Deliver(ctx context.Context, organizationID, orderID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, orderID, "deliverOrder", nil)
}

// Return marks the order as returned.
func (s *OrdersService) Return(ctx context.Context, organizationID, orderID int) (json.RawMessage, error) {
	return s.action(ctx, organizationID, orderID, "returnOrder", nil)
}
