package frisbo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthService handles login, logout and the session probe.
type AuthService struct {
	client *Client
}

// Login exchanges credentials for an access token. It does not mutate the
// client's session; Client.Authenticate does that.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Authorization, error) {
	body, err := s.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v1/auth/login",
		Body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return nil, err
	}

	var auth Authorization
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &auth, nil
}

// Logout invalidates the current session on the server.
func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.client.Do(ctx, Request{Method: http.MethodGet, Path: "/v1/auth/logout"})
	return err
}

// Me returns the user the current session belongs to.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	body, err := s.client.Do(ctx, Request{Method: http.MethodGet, Path: "/v1/me"})
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
