package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/mouse-blink/handcheck/internal/config"
)

// Message is a rendered email ready for delivery.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
	RunID   string
}

// Mailer delivers messages through one transport.
type Mailer interface {
	// Check verifies the transport endpoint is reachable without sending.
	Check(ctx context.Context) error
	Send(ctx context.Context, msg Message) error
	Transport() string
}

// NewMailer picks the mailer matching cfg.Transport. The SMTP relay check
// dials through prober.
func NewMailer(cfg config.EmailConfig, prober Prober, httpClient *http.Client) (Mailer, error) {
	switch cfg.Transport {
	case "smtp":
		return NewSMTPMailer(cfg.SMTP, prober), nil
	case "api":
		return NewAPIMailer(cfg.API, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown email transport %q", cfg.Transport)
	}
}

// SMTPMailer sends through an SMTP relay.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	prober Prober
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(cfg config.SMTPConfig, prober Prober) *SMTPMailer {
	if prober == nil {
		prober = NewProber(nil)
	}

	return &SMTPMailer{cfg: cfg, prober: prober}
}

// Transport names the delivery path.
func (s *SMTPMailer) Transport() string {
	return "smtp"
}

func (s *SMTPMailer) addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Check dials the relay.
func (s *SMTPMailer) Check(ctx context.Context) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	if err := s.prober.DialTCP(ctx, s.addr()); err != nil {
		return fmt.Errorf("smtp relay: %w", err)
	}

	return nil
}

// Send delivers the message.
func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm, err := buildMailMsg(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(s.cfg.TLS)),
		mail.WithTimeout(30 * time.Second),
	}

	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("smtp send via %s: %w", s.addr(), err)
	}

	return nil
}

func tlsPolicy(raw string) mail.TLSPolicy {
	switch raw {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}

func buildMailMsg(msg Message) (*mail.Msg, error) {
	mm := mail.NewMsg()

	if err := mm.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}

	if err := mm.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	mm.Subject(msg.Subject)
	mm.SetDate()
	mm.SetMessageID()

	if msg.RunID != "" {
		mm.SetGenHeader(mail.Header("X-Handcheck-Run"), msg.RunID)
	}

	mm.SetBodyString(mail.TypeTextPlain, msg.Text)

	if msg.HTML != "" {
		mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return mm, nil
}

// APIMailer posts messages to an HTTP email API as JSON.
type APIMailer struct {
	cfg        config.APIConfig
	httpClient *http.Client
}

// NewAPIMailer creates an APIMailer.
func NewAPIMailer(cfg config.APIConfig, httpClient *http.Client) *APIMailer {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}

	return &APIMailer{cfg: cfg, httpClient: httpClient}
}

// Transport names the delivery path.
func (a *APIMailer) Transport() string {
	return "api"
}

type apiPayload struct {
	From    string            `json:"from"`
	To      []string          `json:"to"`
	Subject string            `json:"subject"`
	Text    string            `json:"text"`
	HTML    string            `json:"html,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Check verifies the API endpoint answers.
func (a *APIMailer) Check(ctx context.Context) error {
	if a.cfg.Endpoint == "" {
		return fmt.Errorf("email api endpoint is not configured")
	}

	return CheckReachable(ctx, a.httpClient, a.cfg.Endpoint)
}

// Send posts the message and expects a 2xx answer.
func (a *APIMailer) Send(ctx context.Context, msg Message) error {
	payload := apiPayload{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}

	if msg.RunID != "" {
		payload.Headers = map[string]string{"X-Handcheck-Run": msg.RunID}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if a.cfg.Key != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.Key)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email api rejected message (%d): %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	return nil
}
