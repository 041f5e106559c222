package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateData() TemplateData {
	return TemplateData{
		Recipient: "qa@example.test",
		AppName:   "Acme",
		Link:      "https://acme.test/start?x=1&y=<2>",
		RunID:     "run-1",
		SentAt:    time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestFSTemplateRenderer_Bundled(t *testing.T) {
	r := NewTemplateRenderer("")

	names, err := r.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"invitation", "password-reset", "welcome"}, names)

	out, err := r.Render("welcome", templateData())
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Acme", out.Subject)
	assert.Contains(t, out.Text, "Hi qa@example.test")
	assert.Contains(t, out.Text, "run-1")
	assert.Contains(t, out.HTML, "<h1>Welcome to Acme</h1>")
	assert.Contains(t, out.HTML, "y=%3c2%3e", "html output escapes link")
}

func TestFSTemplateRenderer_TextOnly(t *testing.T) {
	out, err := NewTemplateRenderer("").Render("invitation", templateData())
	require.NoError(t, err)
	assert.Equal(t, "You have been invited to Acme", out.Subject)
	assert.Empty(t, out.HTML)
}

func TestFSTemplateRenderer_Unknown(t *testing.T) {
	_, err := NewTemplateRenderer("").Render("nope", templateData())
	require.ErrorContains(t, err, `unknown email template "nope"`)
}

func TestFSTemplateRenderer_DirectoryOverridesBundled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.txt.tmpl"),
		[]byte(`{{define "subject"}}Custom {{.AppName}}{{end}}{{define "text"}}custom body{{end}}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "digest.txt.tmpl"),
		[]byte(`{{define "subject"}}Digest{{end}}{{define "text"}}weekly{{end}}`), 0o600))

	r := NewTemplateRenderer(dir)

	out, err := r.Render("welcome", templateData())
	require.NoError(t, err)
	assert.Equal(t, "Custom Acme", out.Subject)
	assert.Equal(t, "custom body", out.Text)
	assert.Contains(t, out.HTML, "Welcome to Acme", "html falls back to the bundled layer")

	names, err := r.Names()
	require.NoError(t, err)
	assert.Contains(t, names, "digest")
	assert.Contains(t, names, "password-reset")
}

func TestFSTemplateRenderer_EmptySubject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blank.txt.tmpl"),
		[]byte(`{{define "subject"}}  {{end}}{{define "text"}}body{{end}}`), 0o600))

	_, err := NewTemplateRenderer(dir).Render("blank", templateData())
	require.ErrorContains(t, err, "empty subject")
}
