package model

// ProviderInfo describes a configured OAuth provider for display.
type ProviderInfo struct {
	Name        string
	AuthURL     string
	RedirectURL string
	Scopes      []string
	Configured  bool // client id present
}
