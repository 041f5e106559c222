package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/config"
)

func fakeProvider(t *testing.T) (*httptest.Server, config.ProviderConfig) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		if r.Form.Get("code") != "good-code" || r.Form.Get("code_verifier") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"email": "qa@example.test", "sub": "42"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, config.ProviderConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		AuthURL:      srv.URL + "/authorize",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  srv.URL + "/userinfo",
		RedirectURL:  "http://127.0.0.1:0/callback",
		Scopes:       []string{"openid", "email"},
	}
}

func TestHTTPOAuthClient_AuthorizationURL(t *testing.T) {
	_, provider := fakeProvider(t)
	client := NewOAuthClient(nil)

	req, err := client.AuthorizationURL(provider)
	require.NoError(t, err)

	u, err := url.Parse(req.URL)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email", q.Get("scope"))
	assert.Equal(t, req.State, q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.NotEqual(t, req.Verifier, q.Get("code_challenge"), "verifier must not leak into the URL")

	again, err := client.AuthorizationURL(provider)
	require.NoError(t, err)
	assert.NotEqual(t, req.State, again.State)
}

func TestHTTPOAuthClient_AuthorizationURL_InvalidProvider(t *testing.T) {
	_, err := NewOAuthClient(nil).AuthorizationURL(config.ProviderConfig{AuthURL: "not a url"})
	require.Error(t, err)
}

func TestHTTPOAuthClient_ExchangeAndUserInfo(t *testing.T) {
	srv, provider := fakeProvider(t)
	client := NewOAuthClient(srv.Client())
	ctx := context.Background()

	token, err := client.Exchange(ctx, provider, "good-code", "verifier")
	require.NoError(t, err)
	assert.Equal(t, "access-123", token.AccessToken)

	info, err := client.UserInfo(ctx, provider, token)
	require.NoError(t, err)
	assert.Equal(t, "qa@example.test", info["email"])

	_, err = client.Exchange(ctx, provider, "bad-code", "verifier")
	require.Error(t, err)
}

func TestCallbackServer(t *testing.T) {
	client := NewOAuthClient(nil)

	get := func(t *testing.T, target string) {
		t.Helper()

		resp, err := http.Get(target)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	status := func(t *testing.T, target string) int {
		t.Helper()

		resp, err := http.Get(target)
		require.NoError(t, err)
		_ = resp.Body.Close()

		return resp.StatusCode
	}

	t.Run("returns code for matching state", func(t *testing.T) {
		srv, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer srv.Close()

		get(t, srv.URL()+"?code=abc&state=s1")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		cb, err := srv.Wait(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "abc", cb.Code)
	})

	t.Run("rejects state mismatch", func(t *testing.T) {
		srv, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer srv.Close()

		get(t, srv.URL()+"?code=abc&state=forged")

		_, err = srv.Wait(context.Background(), "s1")
		require.ErrorContains(t, err, "state mismatch")
	})

	t.Run("surfaces provider error", func(t *testing.T) {
		srv, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer srv.Close()

		get(t, srv.URL()+"?error=access_denied&error_description=user+said+no&state=s1")

		_, err = srv.Wait(context.Background(), "s1")
		require.ErrorContains(t, err, "access_denied: user said no")
	})

	t.Run("answers 400 on state mismatch", func(t *testing.T) {
		srv, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer srv.Close()

		srv.Expect("s1")

		assert.Equal(t, http.StatusBadRequest, status(t, srv.URL()+"?code=abc&state=forged"))

		_, err = srv.Wait(context.Background(), "s1")
		require.ErrorContains(t, err, "state mismatch")
	})

	t.Run("rejects a second callback", func(t *testing.T) {
		srv, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer srv.Close()

		srv.Expect("s1")

		assert.Equal(t, http.StatusOK, status(t, srv.URL()+"?code=first&state=s1"))
		assert.Equal(t, http.StatusConflict, status(t, srv.URL()+"?code=second&state=s1"))

		cb, err := srv.Wait(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, "first", cb.Code)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		_, err = srv.Wait(ctx, "s1")
		require.ErrorIs(t, err, context.DeadlineExceeded, "a stale callback must never be delivered")
	})

	t.Run("times out", func(t *testing.T) {
		srv, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		_, err = srv.Wait(ctx, "s1")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("rejects non-http redirect", func(t *testing.T) {
		_, err := client.Listen("https://example.test/callback")
		require.Error(t, err)
	})

	t.Run("reports busy port", func(t *testing.T) {
		first, err := client.Listen("http://127.0.0.1:0/callback")
		require.NoError(t, err)
		defer first.Close()

		u, err := url.Parse(first.URL())
		require.NoError(t, err)

		_, err = client.Listen(fmt.Sprintf("http://%s/callback", u.Host))
		require.Error(t, err)
	})
}
