package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
)

// ProductsService handles product and inventory operations.
type ProductsService struct {
	client *Client
}

// InventoryLevel is one SKU's stock level, used for inventory sync and
// inbound requests. Price is a decimal string on the wire.
type InventoryLevel struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price,omitempty"`
}

// List iterates over the organization's products. Query parameters (filters,
// sorting) pass straight through to the API.
func (s *ProductsService) List(ctx context.Context, organizationID int, query url.Values) iter.Seq2[Product, error] {
	path := fmt.Sprintf("/v1/organizations/%d/products", organizationID)
	return paginateAs[Product](s.client, ctx, path, query, 1)
}

// Create creates a product. Fields beyond the Product struct go in extra.
func (s *ProductsService) Create(ctx context.Context, organizationID int, product Product, extra map[string]any) (*Product, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/products", organizationID),
		Body:   product,
		Extra:  extra,
	})
	if err != nil {
		return nil, err
	}

	var created Product
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &created, nil
}

// Update patches the given product fields.
func (s *ProductsService) Update(ctx context.Context, organizationID, productID int, fields map[string]any) (*Product, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/v1/organizations/%d/products/%d", organizationID, productID),
		Body:   fields,
	})
	if err != nil {
		return nil, err
	}

	var updated Product
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &updated, nil
}

// ListInventory iterates over the organization's inventory records as raw
// JSON documents.
func (s *ProductsService) ListInventory(ctx context.Context, organizationID int, query url.Values) iter.Seq2[json.RawMessage, error] {
	path := fmt.Sprintf("/v1/organizations/%d/inventory", organizationID)
	return s.client.Paginate(ctx, path, query, 1)
}

// SyncInventory pushes stock levels for a batch of SKUs.
func (s *ProductsService) SyncInventory(ctx context.Context, organizationID int, levels []InventoryLevel, extra map[string]any) (json.RawMessage, error) {
	return s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/inventory", organizationID),
		Body:   map[string]any{"products": levels},
		Extra:  extra,
	})
}
