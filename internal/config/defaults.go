package config

import (
	"golang.org/x/oauth2/endpoints"
)

// DefaultRedirectURL is where the local callback server listens.
const DefaultRedirectURL = "http://127.0.0.1:8765/callback"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ReportsDir:      ".handcheck-reports",
			LogLevel:        "info",
			AppName:         "handcheck",
			HTTPTimeoutSecs: 10,
		},
		OAuth: OAuthConfig{
			CallbackTimeoutSecs: 180,
			OpenBrowser:         true,
			Providers:           providerPresets(),
		},
		Email: EmailConfig{
			Transport: "smtp",
			SMTP: SMTPConfig{
				Port: 587,
				TLS:  "opportunistic",
			},
		},
	}
}

// providerPresets seeds well-known endpoints so a project only needs to
// supply client credentials.
func providerPresets() map[string]ProviderConfig {
	return map[string]ProviderConfig{
		"google": {
			AuthURL:     endpoints.Google.AuthURL,
			TokenURL:    endpoints.Google.TokenURL,
			UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
			RedirectURL: DefaultRedirectURL,
			Scopes:      []string{"openid", "email", "profile"},
		},
		"github": {
			AuthURL:     endpoints.GitHub.AuthURL,
			TokenURL:    endpoints.GitHub.TokenURL,
			UserInfoURL: "https://api.github.com/user",
			RedirectURL: DefaultRedirectURL,
			Scopes:      []string{"read:user", "user:email"},
		},
		"gitlab": {
			AuthURL:     endpoints.GitLab.AuthURL,
			TokenURL:    endpoints.GitLab.TokenURL,
			UserInfoURL: "https://gitlab.com/oauth/userinfo",
			RedirectURL: DefaultRedirectURL,
			Scopes:      []string{"openid", "email"},
		},
	}
}
