package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
)

// OrganizationsService handles organization, warehouse, channel and user
// operations.
type OrganizationsService struct {
	client *Client
}

// List iterates over all organizations the session has access to.
func (s *OrganizationsService) List(ctx context.Context) iter.Seq2[Organization, error] {
	return paginateAs[Organization](s.client, ctx, "/v1/organizations", nil, 1)
}

// Get returns one organization.
func (s *OrganizationsService) Get(ctx context.Context, organizationID int) (*Organization, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/organizations/%d", organizationID),
	})
	if err != nil {
		return nil, err
	}

	var org Organization
	if err := json.Unmarshal(body, &org); err != nil {
		return nil, fmt.Errorf("failed to decode organization: %w", err)
	}
	return &org, nil
}

// ListWarehouses returns the organization's fulfillment warehouses.
func (s *OrganizationsService) ListWarehouses(ctx context.Context, organizationID int) ([]Warehouse, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/organizations/%d/warehouses", organizationID),
	})
	if err != nil {
		return nil, err
	}

	var warehouses []Warehouse
	if err := json.Unmarshal(body, &warehouses); err != nil {
		return nil, fmt.Errorf("failed to decode warehouses: %w", err)
	}
	return warehouses, nil
}

// ListChannels returns the organization's sales channels.
func (s *OrganizationsService) ListChannels(ctx context.Context, organizationID int) ([]Channel, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/organizations/%d/channels", organizationID),
	})
	if err != nil {
		return nil, err
	}

	var channels []Channel
	if err := json.Unmarshal(body, &channels); err != nil {
		return nil, fmt.Errorf("failed to decode channels: %w", err)
	}
	return channels, nil
}

// CreateChannel creates a sales channel. Extra fields pass through to the
// request body unvalidated.
func (s *OrganizationsService) CreateChannel(ctx context.Context, organizationID int, name, channelType string, extra map[string]any) (*Channel, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/channels", organizationID),
		Body:   map[string]string{"name": name, "type": channelType},
		Extra:  extra,
	})
	if err != nil {
		return nil, err
	}

	var channel Channel
	if err := json.Unmarshal(body, &channel); err != nil {
		return nil, fmt.Errorf("failed to decode channel: %w", err)
	}
	return &channel, nil
}

// ListUsers returns the organization's users.
func (s *OrganizationsService) ListUsers(ctx context.Context, organizationID int) ([]User, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/organizations/%d/users", organizationID),
	})
	if err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// CreateUser creates an organization user.
func (s *OrganizationsService) CreateUser(ctx context.Context, organizationID int, firstName, lastName, email string, extra map[string]any) (*User, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1/organizations/%d/users", organizationID),
		Body: map[string]string{
			"first_name": firstName,
			"last_name":  lastName,
			"email":      email,
		},
		Extra: extra,
	})
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
