package domain

import (
	"context"
	"fmt"
	"net"
	"net/mail"
	"strconv"

	"github.com/mouse-blink/handcheck/internal/adapter"
)

// emailRun carries state between the steps of one email suite run.
type emailRun struct {
	w         *workflow
	runID     string
	recipient string
	template  string
	mailer    adapter.Mailer
	rendered  *adapter.RenderedEmail
	sent      bool
}

func (w *workflow) emailSuite(args EmailArgs, runID string) Suite {
	template := args.Template
	if template == "" {
		template = DefaultEmailTemplate
	}

	r := &emailRun{w: w, runID: runID, recipient: args.Recipient, template: template}

	return Suite{
		TestID: testIDOr(args.TestID, "email-"+template),
		RunID:  runID,
		Name:   "email",
		Target: args.Recipient,
		Steps: []Step{
			{Name: "config", Required: true, Run: r.checkConfig},
			{Name: "connectivity", Required: true, Run: r.checkConnectivity},
			{Name: "render", Run: r.render},
			{Name: "send", Guard: r.needRendered, Run: r.send},
			{
				Name:        "delivered",
				Guard:       r.needSent,
				Instruction: fmt.Sprintf("Open the inbox of %s and look for the message tagged with run %s.", args.Recipient, runID),
				Question:    "Did the email arrive in the inbox (not spam)?",
			},
			{
				Name:        "formatting",
				Guard:       r.needSent,
				Instruction: "Open the message and check both the HTML and the plain-text view.",
				Question:    "Does the email render correctly (layout, images, links)?",
			},
		},
	}
}

func (r *emailRun) checkConfig(_ context.Context) (string, error) {
	cfg := r.w.cfg.Email

	if cfg.From == "" {
		return "", fmt.Errorf("email.from is not set")
	}

	if _, err := mail.ParseAddress(cfg.From); err != nil {
		return "", fmt.Errorf("invalid sender %q: %w", cfg.From, err)
	}

	addr, err := mail.ParseAddress(r.recipient)
	if err != nil {
		return "", fmt.Errorf("invalid recipient %q: %w", r.recipient, err)
	}

	r.recipient = addr.Address

	var endpoint string

	switch cfg.Transport {
	case "smtp":
		if cfg.SMTP.Host == "" {
			return "", fmt.Errorf("email.smtp.host is not set")
		}

		endpoint = net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port))
	case "api":
		if cfg.API.Endpoint == "" {
			return "", fmt.Errorf("email.api.endpoint is not set")
		}

		endpoint = cfg.API.Endpoint
	}

	mailer, err := r.w.newMailer(cfg)
	if err != nil {
		return "", err
	}

	r.mailer = mailer

	return fmt.Sprintf("%s via %s", mailer.Transport(), endpoint), nil
}

func (r *emailRun) checkConnectivity(ctx context.Context) (string, error) {
	if err := r.mailer.Check(ctx); err != nil {
		return "", err
	}

	return r.mailer.Transport() + " endpoint reachable", nil
}

func (r *emailRun) render(_ context.Context) (string, error) {
	general := r.w.cfg.General

	rendered, err := r.w.templates.Render(r.template, adapter.TemplateData{
		Recipient: r.recipient,
		AppName:   general.AppName,
		AppURL:    general.AppURL,
		Link:      general.AppURL,
		RunID:     r.runID,
		SentAt:    r.w.clock(),
	})
	if err != nil {
		return "", err
	}

	r.rendered = &rendered

	parts := "text"
	if rendered.HTML != "" {
		parts = "text+html"
	}

	return fmt.Sprintf("%s, subject %q", parts, rendered.Subject), nil
}

func (r *emailRun) send(ctx context.Context) (string, error) {
	err := r.mailer.Send(ctx, adapter.Message{
		From:    r.w.cfg.Email.From,
		To:      r.recipient,
		Subject: r.rendered.Subject,
		Text:    r.rendered.Text,
		HTML:    r.rendered.HTML,
		RunID:   r.runID,
	})
	if err != nil {
		return "", err
	}

	r.sent = true

	return "sent via " + r.mailer.Transport(), nil
}

func (r *emailRun) needRendered() error {
	if r.rendered == nil {
		return Skipf("nothing rendered")
	}

	return nil
}

func (r *emailRun) needSent() error {
	if !r.sent {
		return Skipf("email was not sent")
	}

	return nil
}
