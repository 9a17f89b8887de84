package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 15 * time.Second
	defaultCreateTimeout  = 60 * time.Second
	userAgent             = "panelbot"
)

type API struct {
	BaseURL string
}

// Timeouts bound each panel call. Create is the slowest endpoint on the panel.
type Timeouts struct {
	Request time.Duration
	Create  time.Duration
}

func (t Timeouts) request() time.Duration {
	if t.Request <= 0 {
		return defaultRequestTimeout
	}
	return t.Request
}

func (t Timeouts) create() time.Duration {
	if t.Create <= 0 {
		return defaultCreateTimeout
	}
	return t.Create
}

type transport struct {
	base       *url.URL
	httpClient *http.Client
}

func newTransport(api API, httpClient *http.Client) (transport, error) {
	base, err := parseBaseURL(api.BaseURL)
	if err != nil {
		return transport{}, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return transport{base: base, httpClient: httpClient}, nil
}

type request struct {
	op      string
	method  string
	path    string
	query   url.Values
	body    any
	token   string
	timeout time.Duration
}

// do returns the raw response for any status. Only failures to get a
// response at all are reported, as *domain.TransportError.
func (t transport) do(ctx context.Context, req request) (ports.PanelResponse, error) {
	endpoint := t.endpoint(req.path, req.query)

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return ports.PanelResponse{}, fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := context.WithTimeout(ctx, req.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return ports.PanelResponse{}, fmt.Errorf("%s: create request: %w", req.op, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return ports.PanelResponse{}, &domain.TransportError{Op: req.op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ports.PanelResponse{}, &domain.TransportError{Op: req.op, Err: fmt.Errorf("read response: %w", err)}
	}

	return ports.PanelResponse{Status: resp.StatusCode, Body: data}, nil
}

// expect maps statuses outside accepted onto *domain.PanelRejectedError.
func expect(op string, resp ports.PanelResponse, accepted ...int) error {
	for _, status := range accepted {
		if resp.Status == status {
			return nil
		}
	}
	return &domain.PanelRejectedError{Op: op, Status: resp.Status, Body: strings.TrimSpace(string(resp.Body))}
}

func decode(op string, resp ports.PanelResponse, target any) error {
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (t transport) endpoint(path string, query url.Values) string {
	endpoint := *t.base
	endpoint.Path = strings.TrimRight(t.base.Path, "/") + path
	endpoint.RawQuery = ""
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("panel base url is required")
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse panel base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("panel base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("panel base url host is required")
	}

	return parsed, nil
}
