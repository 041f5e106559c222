package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for semantic errors. Per-provider
// completeness is checked by the oauth suite so unused presets never fail a load.
func Validate(cfg Config) error {
	var errs []string

	if strings.TrimSpace(cfg.General.ReportsDir) == "" {
		errs = append(errs, "general.reports_dir must not be empty")
	}
	if !oneOf(strings.ToLower(cfg.General.LogLevel), "debug", "info", "warn", "warning", "error") {
		errs = append(errs, "general.log_level must be one of debug|info|warn|error")
	}
	if cfg.General.HTTPTimeoutSecs <= 0 {
		errs = append(errs, "general.http_timeout must be > 0 seconds")
	}
	if cfg.General.AppURL != "" {
		if _, err := url.ParseRequestURI(cfg.General.AppURL); err != nil {
			errs = append(errs, "general.app_url must be an absolute URL")
		}
	}

	if cfg.OAuth.CallbackTimeoutSecs <= 0 {
		errs = append(errs, "oauth.callback_timeout must be > 0 seconds")
	}
	for _, name := range cfg.ProviderNames() {
		redirect := cfg.OAuth.Providers[name].RedirectURL
		if redirect == "" {
			continue
		}
		if u, err := url.Parse(redirect); err != nil || u.Host == "" {
			errs = append(errs, fmt.Sprintf("oauth.providers.%s.redirect_url must be an absolute URL", name))
		}
	}

	if !oneOf(cfg.Email.Transport, "smtp", "api") {
		errs = append(errs, "email.transport must be one of smtp|api")
	}
	if cfg.Email.SMTP.Port < 0 || cfg.Email.SMTP.Port > 65535 {
		errs = append(errs, "email.smtp.port must be between 0 and 65535")
	}
	if !oneOf(cfg.Email.SMTP.TLS, "opportunistic", "mandatory", "none") {
		errs = append(errs, "email.smtp.tls must be one of opportunistic|mandatory|none")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}

	return nil
}

func oneOf(val string, options ...string) bool {
	for _, opt := range options {
		if val == opt {
			return true
		}
	}

	return false
}
