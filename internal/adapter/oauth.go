package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/mouse-blink/handcheck/internal/config"
)

// AuthRequest is an authorization URL together with the secrets needed to
// complete it.
type AuthRequest struct {
	URL      string
	State    string
	Verifier string
}

// Callback is what the provider sent to the redirect URL.
type Callback struct {
	Code  string
	State string
}

// OAuthClient drives the authorization code flow with PKCE.
type OAuthClient interface {
	AuthorizationURL(provider config.ProviderConfig) (AuthRequest, error)
	Listen(redirectURL string) (CallbackServer, error)
	Exchange(ctx context.Context, provider config.ProviderConfig, code, verifier string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, provider config.ProviderConfig, token *oauth2.Token) (map[string]any, error)
}

// CallbackServer receives the provider redirect on the loopback interface.
type CallbackServer interface {
	// URL is the redirect URL the server answers on, with the bound port.
	URL() string
	// Expect sets the state the handler accepts. A callback carrying any
	// other state is answered with 400 instead of a success page.
	Expect(state string)
	// Wait blocks until a callback with the expected state arrives.
	Wait(ctx context.Context, expectedState string) (Callback, error)
	Close() error
}

// HTTPOAuthClient implements OAuthClient on top of golang.org/x/oauth2.
type HTTPOAuthClient struct {
	httpClient *http.Client
}

// NewOAuthClient creates an OAuthClient using the given HTTP client for
// token and userinfo requests.
func NewOAuthClient(httpClient *http.Client) *HTTPOAuthClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}

	return &HTTPOAuthClient{httpClient: httpClient}
}

func oauthConfig(provider config.ProviderConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     provider.ClientID,
		ClientSecret: provider.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  provider.AuthURL,
			TokenURL: provider.TokenURL,
		},
		RedirectURL: provider.RedirectURL,
		Scopes:      provider.Scopes,
	}
}

// AuthorizationURL builds the consent URL with a random state and an S256
// PKCE challenge.
func (c *HTTPOAuthClient) AuthorizationURL(provider config.ProviderConfig) (AuthRequest, error) {
	if _, err := url.ParseRequestURI(provider.AuthURL); err != nil {
		return AuthRequest{}, fmt.Errorf("invalid auth url: %w", err)
	}

	state := oauth2.GenerateVerifier()
	verifier := oauth2.GenerateVerifier()

	authURL := oauthConfig(provider).AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	return AuthRequest{URL: authURL, State: state, Verifier: verifier}, nil
}

// Exchange trades the authorization code for a token.
func (c *HTTPOAuthClient) Exchange(ctx context.Context, provider config.ProviderConfig, code, verifier string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := oauthConfig(provider).Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	return token, nil
}

// UserInfo fetches the provider's userinfo document with the access token.
func (c *HTTPOAuthClient) UserInfo(ctx context.Context, provider config.ProviderConfig, token *oauth2.Token) (map[string]any, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	client := oauthConfig(provider).Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("userinfo failed (%d): %s", resp.StatusCode, string(body))
	}

	var info map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}

	return info, nil
}

// Listen binds the loopback address of redirectURL immediately so a busy
// port is reported before the browser is opened.
func (c *HTTPOAuthClient) Listen(redirectURL string) (CallbackServer, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect url: %w", err)
	}

	if u.Scheme != "http" || u.Host == "" {
		return nil, fmt.Errorf("redirect url must be a plain http loopback address: %s", redirectURL)
	}

	ln, err := net.Listen("tcp", u.Host)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", u.Host, err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	u.Host = ln.Addr().String()

	s := &callbackServer{
		url:       u.String(),
		listener:  ln,
		callbacks: make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, s.handle)
	s.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.deliver(callbackResult{err: err})
		}
	}()

	return s, nil
}

type callbackResult struct {
	query url.Values
	err   error
}

type callbackServer struct {
	url       string
	listener  net.Listener
	server    *http.Server
	callbacks chan callbackResult

	mu       sync.Mutex
	state    string
	received bool
}

func (s *callbackServer) URL() string {
	return s.url
}

func (s *callbackServer) Expect(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
}

func (s *callbackServer) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("code") == "" && q.Get("error") == "" {
		http.Error(w, "Missing code", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.received {
		s.mu.Unlock()
		http.Error(w, "Callback already received", http.StatusConflict)

		return
	}

	s.received = true
	expected := s.state
	s.mu.Unlock()

	switch {
	case q.Get("error") != "":
		http.Error(w, "Authorization failed: "+q.Get("error"), http.StatusBadRequest)
	case expected != "" && q.Get("state") != expected:
		http.Error(w, "State mismatch", http.StatusBadRequest)
	default:
		_, _ = w.Write([]byte("Authorization received. You can close this window and return to the terminal."))
	}

	s.deliver(callbackResult{query: q})
}

// deliver never blocks.
func (s *callbackServer) deliver(res callbackResult) {
	select {
	case s.callbacks <- res:
	default:
	}
}

func (s *callbackServer) Wait(ctx context.Context, expectedState string) (Callback, error) {
	select {
	case <-ctx.Done():
		return Callback{}, ctx.Err()
	case res := <-s.callbacks:
		if res.err != nil {
			return Callback{}, res.err
		}

		q := res.query
		if errStr := q.Get("error"); errStr != "" {
			if desc := q.Get("error_description"); desc != "" {
				return Callback{}, fmt.Errorf("provider returned error: %s: %s", errStr, desc)
			}

			return Callback{}, fmt.Errorf("provider returned error: %s", errStr)
		}

		if q.Get("state") != expectedState {
			return Callback{}, fmt.Errorf("state mismatch in callback")
		}

		return Callback{Code: q.Get("code"), State: q.Get("state")}, nil
	}
}

func (s *callbackServer) Close() error {
	return s.server.Close()
}
