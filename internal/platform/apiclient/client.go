package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"rivalradar_backend/internal/api"
	authdto "rivalradar_backend/internal/feature/auth/transport/http/dto"
	comparisondto "rivalradar_backend/internal/feature/comparison/transport/http/dto"
	competitorsdto "rivalradar_backend/internal/feature/competitors/transport/http/dto"
)

// CredentialProvider supplies the bearer token for authenticated calls.
type CredentialProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api http %d", e.StatusCode)
	}
	return fmt.Sprintf("api http %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Client calls the backend's JSON endpoints.
type Client struct {
	cfg    Config
	client *http.Client
	creds  CredentialProvider
}

// New returns a Client. creds may be nil for unauthenticated calls only.
func New(cfg Config, client *http.Client, creds CredentialProvider) *Client {
	return &Client{cfg: cfg.withDefaults(), client: client, creds: creds}
}

// Login exchanges email and password for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*authdto.TokenRes, error) {
	var out authdto.TokenRes
	body := authdto.LoginReq{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCompetitors returns the caller's registered companies.
func (c *Client) ListCompetitors(ctx context.Context) ([]competitorsdto.CompetitorRes, error) {
	var out []competitorsdto.CompetitorRes
	if err := c.do(ctx, http.MethodGet, "/competitors", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dashboard returns the server-side comparison view-model.
func (c *Client) Dashboard(ctx context.Context) (*comparisondto.ViewModelRes, error) {
	var out comparisondto.ViewModelRes
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, authed bool, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.creds == nil {
			return errors.New("apiclient: no credential provider")
		}
		token, err := c.creds.AccessToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var e api.ErrorResponse
		_ = json.NewDecoder(res.Body).Decode(&e)
		return &APIError{StatusCode: res.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
