package domain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/handcheck/internal/adapter"
	"github.com/mouse-blink/handcheck/internal/config"
)

// ErrUnknownProvider is returned when the requested provider is not configured.
var ErrUnknownProvider = errors.New("unknown oauth provider")

// oauthRun carries state between the steps of one oauth suite run.
type oauthRun struct {
	w        *workflow
	name     string
	provider config.ProviderConfig
	server   adapter.CallbackServer
	request  adapter.AuthRequest
	callback *adapter.Callback
	token    *oauth2.Token
}

func (w *workflow) oauthSuite(args OAuthArgs, runID string) Suite {
	r := &oauthRun{w: w, name: args.Provider}

	appName := w.cfg.General.AppName
	if p, ok := w.cfg.OAuth.Providers[args.Provider]; ok && p.ExpectedAppName != "" {
		appName = p.ExpectedAppName
	}

	return Suite{
		TestID: testIDOr(args.TestID, "oauth-"+args.Provider),
		RunID:  runID,
		Name:   "oauth",
		Target: args.Provider,
		Steps: []Step{
			{Name: "config", Required: true, Run: r.checkConfig},
			{Name: "connectivity", Required: true, Run: r.checkConnectivity},
			{Name: "authorize-url", Run: r.buildAuthorizationURL},
			{Name: "open-browser", Guard: r.needAuthURL, Run: r.openBrowser},
			{Name: "callback", Guard: r.needOperatorAndServer, Run: r.awaitCallback},
			{
				Name:        "consent-screen",
				Guard:       r.needAuthURL,
				Instruction: r.consentInstruction(appName),
				Question:    "Did the consent screen show the expected application name and scopes?",
			},
			{Name: "token-exchange", Guard: r.needCallback, Run: r.exchangeToken},
			{Name: "userinfo", Guard: r.needToken, Run: r.fetchUserInfo},
			{
				Name:        "redirect-landing",
				Guard:       r.needCallback,
				Instruction: "Look at the browser tab that completed the consent flow.",
				Question:    "Did the browser land on the success page?",
			},
		},
		Cleanup: r.close,
	}
}

func (r *oauthRun) consentInstruction(appName string) string {
	p := r.w.cfg.OAuth.Providers[r.name]

	return fmt.Sprintf("Expect %q requesting: %s", appName, strings.Join(p.Scopes, ", "))
}

func (r *oauthRun) close() {
	if r.server != nil {
		_ = r.server.Close()
	}
}

func (r *oauthRun) checkConfig(_ context.Context) (string, error) {
	p, ok := r.w.cfg.OAuth.Providers[r.name]
	if !ok {
		return "", fmt.Errorf("%w %q (configured: %s)", ErrUnknownProvider, r.name, strings.Join(r.w.cfg.ProviderNames(), ", "))
	}

	var missing []string

	for key, value := range map[string]string{
		"client_id":    p.ClientID,
		"auth_url":     p.AuthURL,
		"token_url":    p.TokenURL,
		"redirect_url": p.RedirectURL,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return "", fmt.Errorf("provider %s is missing %s (set HANDCHECK_OAUTH_%s_CLIENT_ID or the provider table)",
			r.name, strings.Join(missing, ", "), strings.ToUpper(r.name))
	}

	r.provider = p

	return fmt.Sprintf("%d scopes, redirect %s", len(p.Scopes), p.RedirectURL), nil
}

func (r *oauthRun) checkConnectivity(ctx context.Context) (string, error) {
	targets := []string{r.provider.AuthURL}
	if r.provider.TokenURL != r.provider.AuthURL {
		targets = append(targets, r.provider.TokenURL)
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			if err := r.w.prober.Reachable(gctx, target); err != nil {
				return fmt.Errorf("%s unreachable: %w", hostOf(target), err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	hosts := make([]string, 0, len(targets))
	for _, target := range targets {
		hosts = append(hosts, hostOf(target))
	}

	return "reached " + strings.Join(dedupe(hosts), ", "), nil
}

func (r *oauthRun) buildAuthorizationURL(_ context.Context) (string, error) {
	server, err := r.w.oauth.Listen(r.provider.RedirectURL)
	if err != nil {
		return "", err
	}

	r.server = server
	r.provider.RedirectURL = server.URL()

	req, err := r.w.oauth.AuthorizationURL(r.provider)
	if err != nil {
		return "", err
	}

	server.Expect(req.State)

	u, err := url.Parse(req.URL)
	if err != nil {
		return "", fmt.Errorf("parse authorization url: %w", err)
	}

	q := u.Query()
	if q.Get("code_challenge_method") != "S256" || q.Get("code_challenge") == "" {
		return "", fmt.Errorf("authorization url carries no S256 challenge")
	}

	r.request = req

	return "PKCE S256, listening on " + server.URL(), nil
}

func (r *oauthRun) openBrowser(ctx context.Context) (string, error) {
	if !r.w.cfg.OAuth.OpenBrowser {
		return r.printURL(ctx, "browser launch disabled")
	}

	if err := r.w.browser.Open(r.request.URL); err != nil {
		return r.printURL(ctx, fmt.Sprintf("could not open browser (%v)", err))
	}

	r.w.ui.DisplayInstruction("Complete the consent screen in your browser", r.request.URL)

	return "opened system browser", nil
}

// printURL shows the URL and, when an operator is answering, waits until
// they have it open before the callback timeout starts.
func (r *oauthRun) printURL(ctx context.Context, reason string) (string, error) {
	r.w.ui.DisplayInstruction("Open this URL in your browser", r.request.URL)

	if r.w.prompter.Interactive() {
		if err := r.w.prompter.Pause(ctx, "Press Enter once the consent screen is open"); err != nil {
			return "", fmt.Errorf("waiting for operator: %w", err)
		}
	}

	return "", Skipf("%s, URL printed", reason)
}

func (r *oauthRun) awaitCallback(ctx context.Context) (string, error) {
	timeout := r.w.cfg.CallbackTimeout()

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var cb adapter.Callback

	message := fmt.Sprintf("Waiting up to %s for the redirect to %s", timeout, r.server.URL())

	err := r.w.ui.Wait(waitCtx, message, func(ctx context.Context) error {
		var err error

		cb, err = r.server.Wait(ctx, r.request.State)

		return err
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("no callback within %s", timeout)
		}

		return "", err
	}

	r.callback = &cb

	return "authorization code received, state verified", nil
}

func (r *oauthRun) exchangeToken(ctx context.Context) (string, error) {
	token, err := r.w.oauth.Exchange(ctx, r.provider, r.callback.Code, r.request.Verifier)
	if err != nil {
		return "", err
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("token response has no access token")
	}

	r.token = token

	notes := []string{"token type " + token.Type()}
	if !token.Expiry.IsZero() {
		notes = append(notes, "expires in "+time.Until(token.Expiry).Round(time.Second).String())
	}

	if token.RefreshToken != "" {
		notes = append(notes, "refresh token issued")
	}

	return strings.Join(notes, ", "), nil
}

func (r *oauthRun) fetchUserInfo(ctx context.Context) (string, error) {
	info, err := r.w.oauth.UserInfo(ctx, r.provider, r.token)
	if err != nil {
		return "", err
	}

	var parts []string

	for _, key := range []string{"email", "sub", "id", "login"} {
		if value, ok := info[key]; ok && value != nil {
			parts = append(parts, fmt.Sprintf("%s %v", key, value))
		}
	}

	if len(parts) == 0 {
		return "userinfo returned no email or subject", nil
	}

	return strings.Join(parts, ", "), nil
}

func (r *oauthRun) needAuthURL() error {
	if r.request.URL == "" {
		return Skipf("no authorization URL")
	}

	return nil
}

func (r *oauthRun) needOperatorAndServer() error {
	if r.server == nil || r.request.URL == "" {
		return Skipf("callback server not started")
	}

	if !r.w.prompter.Interactive() {
		return Skipf("no operator to complete the consent screen")
	}

	return nil
}

func (r *oauthRun) needCallback() error {
	if r.callback == nil {
		return Skipf("no callback received")
	}

	return nil
}

func (r *oauthRun) needToken() error {
	if r.provider.UserInfoURL == "" {
		return Skipf("provider has no userinfo URL")
	}

	if r.token == nil {
		return Skipf("no access token")
	}

	return nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}

	return u.Host
}
