package adapter

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Prober runs the automated checks that precede human judgement.
type Prober interface {
	// Reachable succeeds when the URL answers with any status below 500.
	Reachable(ctx context.Context, rawURL string) error
	// DialTCP succeeds when a TCP connection to addr can be opened.
	DialTCP(ctx context.Context, addr string) error
	// HTTPStatus succeeds when GET rawURL answers with the expected status.
	HTTPStatus(ctx context.Context, rawURL string, expect int) error
	// WebSocketEcho dials rawURL, sends a text frame and waits for a reply
	// containing expect.
	WebSocketEcho(ctx context.Context, rawURL, send, expect string) error
}

// NetProber implements Prober over the network.
type NetProber struct {
	httpClient *http.Client
	dialer     *websocket.Dialer
}

// NewProber creates a NetProber.
func NewProber(httpClient *http.Client) *NetProber {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}

	return &NetProber{
		httpClient: httpClient,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: defaultHTTPTimeout,
		},
	}
}

// CheckReachable issues a HEAD request and falls back to GET when the
// server does not allow HEAD.
func CheckReachable(ctx context.Context, client *http.Client, rawURL string) error {
	status, err := fetchStatus(ctx, client, http.MethodHead, rawURL)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = fetchStatus(ctx, client, http.MethodGet, rawURL)
	}

	if err != nil {
		return err
	}

	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%s answered %d", rawURL, status)
	}

	return nil
}

func fetchStatus(ctx context.Context, client *http.Client, method, rawURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}

	_ = resp.Body.Close()

	return resp.StatusCode, nil
}

// Reachable implements Prober.
func (p *NetProber) Reachable(ctx context.Context, rawURL string) error {
	return CheckReachable(ctx, p.httpClient, rawURL)
}

// DialTCP implements Prober.
func (p *NetProber) DialTCP(ctx context.Context, addr string) error {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	return conn.Close()
}

// HTTPStatus implements Prober.
func (p *NetProber) HTTPStatus(ctx context.Context, rawURL string, expect int) error {
	if expect == 0 {
		expect = http.StatusOK
	}

	status, err := fetchStatus(ctx, p.httpClient, http.MethodGet, rawURL)
	if err != nil {
		return err
	}

	if status != expect {
		return fmt.Errorf("GET %s answered %d, want %d", rawURL, status, expect)
	}

	return nil
}

// WebSocketEcho implements Prober.
func (p *NetProber) WebSocketEcho(ctx context.Context, rawURL, send, expect string) error {
	conn, resp, err := p.dialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket handshake with %s failed (%d): %w", rawURL, resp.StatusCode, err)
		}

		return fmt.Errorf("websocket dial %s: %w", rawURL, err)
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultHTTPTimeout)
	}

	_ = conn.SetWriteDeadline(deadline)
	_ = conn.SetReadDeadline(deadline)

	if send != "" {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(send)); err != nil {
			return fmt.Errorf("websocket write: %w", err)
		}
	}

	if expect == "" {
		expect = send
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("websocket read (waiting for %q): %w", expect, err)
		}

		if strings.Contains(string(data), expect) {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))

			return nil
		}
	}
}
