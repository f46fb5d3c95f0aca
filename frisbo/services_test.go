package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/organizations/921", r.URL.Path)
		fmt.Fprint(w, `{"organization_id":921,"is_active":true,"name":"Acme"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	org, err := client.Organizations.Get(context.Background(), 921)
	require.NoError(t, err)
	assert.Equal(t, "Acme", org.Name)
}

func TestOrganizationsListWarehouses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/organizations/921/warehouses", r.URL.Path)
		fmt.Fprint(w, `[{"id":1,"name":"Bucharest"},{"id":2,"name":"Cluj"}]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	warehouses, err := client.Organizations.ListWarehouses(context.Background(), 921)
	require.NoError(t, err)
	require.Len(t, warehouses, 2)
	assert.Equal(t, "Cluj", warehouses[1].Name)
}

func TestOrganizationsCreateChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/organizations/921/channels", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "My Store", body["name"])
		assert.Equal(t, "shopify", body["type"])
		assert.Equal(t, "https://store.example.com", body["store_url"])

		fmt.Fprint(w, `{"id":5,"name":"My Store","type":"shopify"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	channel, err := client.Organizations.CreateChannel(context.Background(), 921, "My Store", "shopify",
		map[string]any{"store_url": "https://store.example.com"})
	require.NoError(t, err)
	assert.Equal(t, 5, channel.ID)
}

func TestProductsCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/organizations/921/products", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "T-Shirt", body["name"])
		assert.Equal(t, "TSHIRT-001", body["sku"])
		assert.Equal(t, float64(19), body["vat"])
		assert.Equal(t, "1234567890123", body["ean"])

		fmt.Fprint(w, `{"id":123,"name":"T-Shirt","sku":"TSHIRT-001","vat":19}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	product, err := client.Products.Create(context.Background(), 921,
		Product{Name: "T-Shirt", SKU: "TSHIRT-001", VAT: 19},
		map[string]any{"ean": "1234567890123"})
	require.NoError(t, err)
	assert.Equal(t, 123, product.ID)
}

func TestProductsSyncInventory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/organizations/921/inventory", r.URL.Path)

		var body struct {
			Products []InventoryLevel `json:"products"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Products, 2)
		assert.Equal(t, "PROD-001", body.Products[0].SKU)
		assert.Equal(t, 100, body.Products[0].Quantity)

		fmt.Fprint(w, `{"synced":2}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Products.SyncInventory(context.Background(), 921, []InventoryLevel{
		{SKU: "PROD-001", Quantity: 100},
		{SKU: "PROD-002", Quantity: 50},
	}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"synced":2}`, string(resp))
}

func TestOrdersActions(t *testing.T) {
	tests := []struct {
		name     string
		call     func(s *OrdersService) (json.RawMessage, error)
		wantPath string
	}{
		{
			name:     "cancel",
			call:     func(s *OrdersService) (json.RawMessage, error) { return s.Cancel(context.Background(), 921, 12345) },
			wantPath: "/v1/organizations/921/orders/12345/actions/cancel",
		},
		{
			name:     "reprocess",
			call:     func(s *OrdersService) (json.RawMessage, error) { return s.Reprocess(context.Background(), 921, 12345) },
			wantPath: "/v1/organizations/921/orders/12345/actions/reprocess",
		},
		{
			name: "confirm fulfillment",
			call: func(s *OrdersService) (json.RawMessage, error) {
				return s.ConfirmFulfillment(context.Background(), 921, 12345)
			},
			wantPath: "/v1/organizations/921/orders/12345/actions/confirmFulfillment",
		},
		{
			name:     "deliver",
			call:     func(s *OrdersService) (json.RawMessage, error) { return s.Deliver(context.Background(), 921, 12345) },
			wantPath: "/v1/organizations/921/orders/12345/actions/deliverOrder",
		},
		{
			name:     "return",
			call:     func(s *OrdersService) (json.RawMessage, error) { return s.Return(context.Background(), 921, 12345) },
			wantPath: "/v1/organizations/921/orders/12345/actions/returnOrder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				fmt.Fprint(w, `{"status":"ok"}`)
			}))
			defer server.Close()

			client := newTestClient(t, server)
			_, err := tt.call(client.Orders)
			require.NoError(t, err)
		})
	}
}

func TestOrdersShipWithAWB(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/organizations/921/orders/12345/actions/shipOrder", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AWB123456", body["awb"])

		fmt.Fprint(w, `{"status":"shipped"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Orders.Ship(context.Background(), 921, 12345, "AWB123456")
	require.NoError(t, err)
}

func TestOrdersCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ORD-12345", body["order_reference"])
		assert.Equal(t, "note for picker", body["notes"])

		customer, ok := body["shipping_customer"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "customer@example.com", customer["email"])

		fmt.Fprint(w, `{"order_id":1,"order_reference":"ORD-12345"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Orders.Create(context.Background(), 921, CreateOrderRequest{
		OrderReference: "ORD-12345",
		ShippingCustomer: Customer{
			Email:     "customer@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Phone:     "+40712345678",
		},
		ShippingAddress: Address{
			Street:  "123 Main St",
			City:    "Bucharest",
			Country: "RO",
			Zip:     "010101",
		},
		Products: []OrderProduct{{SKU: "PROD-001", Name: "Product 1", Price: "99.99", Quantity: 2, VAT: "19"}},
	}, map[string]any{"notes": "note for picker"})
	require.NoError(t, err)
}

func TestOrdersGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"order not found"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Orders.Get(context.Background(), 921, 99999)
	assert.True(t, IsNotFound(err))
}

func TestInvoicesListSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/organizations/921/invoices/series", r.URL.Path)
		fmt.Fprint(w, `[{"series":"FRB","number":1042}]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	series, err := client.Invoices.ListSeries(context.Background(), 921)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "FRB", series[0].Series)
}

func TestInboundWorkflow(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	_, err := client.Inbound.Create(ctx, 921, 1, []InventoryLevel{{SKU: "PROD-001", Quantity: 100, Price: "10.00"}}, nil)
	require.NoError(t, err)
	_, err = client.Inbound.Approve(ctx, 921, 7)
	require.NoError(t, err)
	_, err = client.Inbound.SendToWms(ctx, 921, 7)
	require.NoError(t, err)
	_, err = client.Inbound.Complete(ctx, 921, 7)
	require.NoError(t, err)
	_, err = client.Inbound.Confirm(ctx, 921, 7)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/v1/organizations/921/inventory",
		"/v1/organizations/921/inventory/7/actions/approve",
		"/v1/organizations/921/inventory/7/actions/sendToWms",
		"/v1/organizations/921/inventory/7/actions/complete",
		"/v1/organizations/921/inventory/7/actions/confirm",
	}, paths)
}

func TestProductsListPassesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/organizations/921/products", r.URL.Path)
		assert.Equal(t, "TSHIRT", r.URL.Query().Get("sku"))
		fmt.Fprint(w, `{"data":[{"id":1,"name":"T-Shirt","sku":"TSHIRT-001","vat":19}],"current_page":1,"last_page":1}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	var products []Product
	for p, err := range client.Products.List(context.Background(), 921, url.Values{"sku": {"TSHIRT"}}) {
		require.NoError(t, err)
		products = append(products, p)
	}
	require.Len(t, products, 1)
	assert.Equal(t, "TSHIRT-001", products[0].SKU)
}
