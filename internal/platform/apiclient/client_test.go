package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdto "rivalradar_backend/internal/feature/auth/transport/http/dto"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) AccessToken(context.Context) (string, error) { return s.token, s.err }

func newTestClient(t *testing.T, h http.HandlerFunc, creds CredentialProvider) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL + "/"}, server.Client(), creds)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req authdto.LoginReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@example.com", req.Email)
		assert.Equal(t, "password123", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"acc","refresh_token":"ref","token_type":"Bearer","expires_in":900}`))
	}, nil)

	got, err := c.Login(context.Background(), "a@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "acc", got.AccessToken)
	assert.Equal(t, "ref", got.RefreshToken)
	assert.Equal(t, int64(900), got.ExpiresIn)
}

func TestClient_ListCompetitors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/competitors", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Acme","features":["SSO"],"is_primary":true},{"id":2,"name":"Globex","features":[]}]`))
	}, staticToken{token: "tok"})

	got, err := c.ListCompetitors(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme", got[0].Name)
	assert.True(t, got[0].IsPrimary)
	assert.Equal(t, []string{"SSO"}, got[0].Features)
	assert.Equal(t, uint(2), got[1].ID)
}

func TestClient_Dashboard(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"missing_primary_entity","primary":null,"competitors":[]}`))
	}, staticToken{token: "tok"})

	got, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "missing_primary_entity", got.Status)
	assert.Nil(t, got.Primary)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("api error carries status and message", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"duplicate competitor name"}`))
		}, staticToken{token: "tok"})

		_, err := c.Dashboard(context.Background())
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusUnprocessableEntity))
		assert.Contains(t, err.Error(), "duplicate competitor name")
	})

	t.Run("credential error stops the request", func(t *testing.T) {
		t.Parallel()

		errNoLogin := errors.New("not logged in")
		called := false
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		}, staticToken{err: errNoLogin})

		_, err := c.ListCompetitors(context.Background())
		assert.ErrorIs(t, err, errNoLogin)
		assert.False(t, called)
	})

	t.Run("missing provider", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, nil)
		_, err := c.ListCompetitors(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}, staticToken{token: "tok"})

		_, err := c.ListCompetitors(context.Background())
		assert.Error(t, err)
		assert.False(t, IsStatus(err, http.StatusOK))
	})
}

func TestConfig_withDefaults(t *testing.T) {
	t.Parallel()

	got := Config{}.withDefaults()
	assert.Equal(t, DefaultBaseURL, got.BaseURL)
	assert.Equal(t, DefaultTimeout, got.Timeout)
}
