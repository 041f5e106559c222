package adapter

import (
	"io"

	"github.com/pkg/browser"
)

// BrowserOpener opens URLs for the operator.
type BrowserOpener interface {
	Open(url string) error
}

// SystemBrowser opens URLs with the platform's default browser.
type SystemBrowser struct{}

// NewSystemBrowser creates a SystemBrowser. The launcher's own output is
// silenced so it does not interleave with prompts.
func NewSystemBrowser() *SystemBrowser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &SystemBrowser{}
}

// Open launches the browser.
func (b *SystemBrowser) Open(url string) error {
	return browser.OpenURL(url)
}
