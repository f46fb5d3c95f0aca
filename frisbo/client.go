package frisbo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Frisbo API endpoint.
const DefaultBaseURL = "https://api.frisbo.ro"

const defaultTimeout = 30 * time.Second

// Client is a Frisbo API client. It owns the session (access token and its
// expiry) and dispatches authenticated requests on behalf of the resource
// services.
type Client struct {
	baseURL    string
	email      string
	password   string
	httpClient *http.Client
	proxy      *url.URL
	logger     zerolog.Logger
	hooks      *Hooks
	autoLogin  bool
	now        func() time.Time

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time

	Auth          *AuthService
	Organizations *OrganizationsService
	Products      *ProductsService
	Orders        *OrdersService
	Invoices      *InvoicesService
	Inbound       *InboundService
}

// NewClient creates a new Frisbo client. When email and password are given
// and no pre-existing token was supplied, the client logs in immediately and
// construction fails with *AuthenticationError if the login is rejected.
// Use WithoutAutoLogin to defer authentication.
func NewClient(email, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	client := &Client{
		baseURL:    DefaultBaseURL,
		email:      email,
		password:   password,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
		autoLogin:  true,
		now:        time.Now,
	}

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")

	if client.proxy != nil {
		transport, ok := client.httpClient.Transport.(*http.Transport)
		if ok {
			transport = transport.Clone()
		} else {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}
		transport.Proxy = http.ProxyURL(client.proxy)
		client.httpClient.Transport = transport
	}

	client.Auth = &AuthService{client: client}
	client.Organizations = &OrganizationsService{client: client}
	client.Products = &ProductsService{client: client}
	client.Orders = &OrdersService{client: client}
	client.Invoices = &InvoicesService{client: client}
	client.Inbound = &InboundService{client: client}

	logger.Debug().
		Str("base_url", client.baseURL).
		Bool("proxy", client.proxy != nil).
		Msg("Initialized Frisbo client")

	if client.autoLogin && email != "" && password != "" && client.accessToken == "" {
		if _, err := client.Authenticate(context.Background()); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// Authenticate logs in with the configured credentials and stores the
// returned access token, along with its expiry when the server reports a
// lifetime. Every failure mode surfaces as *AuthenticationError.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if c.email == "" || c.password == "" {
		err := &AuthenticationError{Message: "email and password are required"}
		c.hooks.authFailed(err)
		return "", err
	}

	c.logger.Debug().Str("email", c.email).Msg("Authenticating with Frisbo")

	auth, err := c.Auth.Login(ctx, c.email, c.password)
	if err != nil {
		authErr := &AuthenticationError{Message: err.Error(), Err: err}
		c.hooks.authFailed(authErr)
		c.logger.Error().Err(err).Str("email", c.email).Msg("Authentication failed")
		return "", authErr
	}

	var expiresAt time.Time
	if auth.ExpiresIn > 0 {
		expiresAt = c.now().Add(time.Duration(auth.ExpiresIn) * time.Second)
	}

	c.mu.Lock()
	c.accessToken = auth.AccessToken
	c.tokenExpiresAt = expiresAt
	c.mu.Unlock()

	c.hooks.authSucceeded(expiresAt)
	if expiresAt.IsZero() {
		c.logger.Info().Str("email", c.email).Msg("Authentication successful")
	} else {
		c.logger.Info().Str("email", c.email).Time("expires_at", expiresAt).Msg("Authentication successful")
	}

	return auth.AccessToken, nil
}

// IsAuthenticated reports whether the client holds a token that has not
// expired. It never performs a network call.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken == "" {
		return false
	}
	if !c.tokenExpiresAt.IsZero() && !c.now().Before(c.tokenExpiresAt) {
		return false
	}
	return true
}

// EnsureAuthenticated re-authenticates when the token is missing or expired
// and credentials are available, and fails with *AuthenticationError when
// they are not.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	if c.IsAuthenticated() {
		return nil
	}
	if c.email != "" && c.password != "" {
		c.logger.Info().Msg("Re-authenticating due to expired or missing token")
		_, err := c.Authenticate(ctx)
		return err
	}
	return &AuthenticationError{Message: "not authenticated and no credentials available"}
}

// Logout invalidates the session on the server (best effort) and clears the
// local token and expiry regardless of the outcome. Calling Logout without
// an active session does nothing.
func (c *Client) Logout(ctx context.Context) {
	c.mu.Lock()
	token := c.accessToken
	c.mu.Unlock()

	if token == "" {
		return
	}

	c.logger.Info().Str("email", c.email).Msg("Logging out")
	if err := c.Auth.Logout(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("Remote logout failed, clearing local session anyway")
	}

	c.mu.Lock()
	c.accessToken = ""
	c.tokenExpiresAt = time.Time{}
	c.mu.Unlock()
}

// Me returns the user the current session belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return c.Auth.Me(ctx)
}

// token returns the current access token, or the empty string when the
// session holds none.
func (c *Client) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}
