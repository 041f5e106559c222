// Package config implements layered configuration for handcheck.
// Precedence: defaults < user (~/.handcheck/config.toml) < project (.handcheck.toml) < .env/env (HANDCHECK_*) < flags.
package config

import (
	"sort"
	"time"
)

// Config is the top-level configuration structure.
type Config struct {
	General GeneralConfig `toml:"general" mapstructure:"general"`
	OAuth   OAuthConfig   `toml:"oauth" mapstructure:"oauth"`
	Email   EmailConfig   `toml:"email" mapstructure:"email"`
}

// GeneralConfig holds settings shared by every suite.
type GeneralConfig struct {
	ReportsDir      string `toml:"reports_dir" mapstructure:"reports_dir"`
	LogLevel        string `toml:"log_level" mapstructure:"log_level"`
	Operator        string `toml:"operator" mapstructure:"operator"`
	NonInteractive  bool   `toml:"non_interactive" mapstructure:"non_interactive"`
	AppName         string `toml:"app_name" mapstructure:"app_name"`
	AppURL          string `toml:"app_url" mapstructure:"app_url"`
	HTTPTimeoutSecs int    `toml:"http_timeout" mapstructure:"http_timeout"`
}

// OAuthConfig holds the providers exercised by the oauth suite.
type OAuthConfig struct {
	CallbackTimeoutSecs int                       `toml:"callback_timeout" mapstructure:"callback_timeout"`
	OpenBrowser         bool                      `toml:"open_browser" mapstructure:"open_browser"`
	Providers           map[string]ProviderConfig `toml:"providers" mapstructure:"providers"`
}

// ProviderConfig describes one OAuth 2.0 authorization server.
type ProviderConfig struct {
	ClientID        string   `toml:"client_id" mapstructure:"client_id"`
	ClientSecret    string   `toml:"client_secret" mapstructure:"client_secret"`
	AuthURL         string   `toml:"auth_url" mapstructure:"auth_url"`
	TokenURL        string   `toml:"token_url" mapstructure:"token_url"`
	UserInfoURL     string   `toml:"userinfo_url" mapstructure:"userinfo_url"`
	RedirectURL     string   `toml:"redirect_url" mapstructure:"redirect_url"`
	Scopes          []string `toml:"scopes" mapstructure:"scopes"`
	ExpectedAppName string   `toml:"expected_app_name" mapstructure:"expected_app_name"`
}

// EmailConfig holds delivery settings for the email suite.
type EmailConfig struct {
	Transport    string     `toml:"transport" mapstructure:"transport"` // smtp | api
	From         string     `toml:"from" mapstructure:"from"`
	TemplatesDir string     `toml:"templates_dir" mapstructure:"templates_dir"`
	SMTP         SMTPConfig `toml:"smtp" mapstructure:"smtp"`
	API          APIConfig  `toml:"api" mapstructure:"api"`
}

// SMTPConfig holds SMTP relay settings.
type SMTPConfig struct {
	Host     string `toml:"host" mapstructure:"host"`
	Port     int    `toml:"port" mapstructure:"port"`
	Username string `toml:"username" mapstructure:"username"`
	Password string `toml:"password" mapstructure:"password"`
	TLS      string `toml:"tls" mapstructure:"tls"` // opportunistic | mandatory | none
}

// APIConfig holds settings for an HTTP email API.
type APIConfig struct {
	Endpoint string `toml:"endpoint" mapstructure:"endpoint"`
	Key      string `toml:"key" mapstructure:"key"`
}

// HTTPTimeout returns the per-request timeout for outbound HTTP calls.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.General.HTTPTimeoutSecs) * time.Second
}

// CallbackTimeout returns how long the oauth suite waits for the redirect.
func (c Config) CallbackTimeout() time.Duration {
	return time.Duration(c.OAuth.CallbackTimeoutSecs) * time.Second
}

// ProviderNames returns the configured provider names in sorted order.
func (c Config) ProviderNames() []string {
	names := make([]string, 0, len(c.OAuth.Providers))
	for name := range c.OAuth.Providers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
