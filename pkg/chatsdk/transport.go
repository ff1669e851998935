package chatsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/harborchat/harbor/pkg/reqid"
	"github.com/harborchat/harbor/pkg/slogx"
)

// ============================================================================
// Transport Contract
// ============================================================================

// Request is a single outgoing API request. Path is relative to the
// service base URL; Header carries optional extra headers such as the
// session auth headers.
type Request struct {
	Method string
	Path   string
	Body   []byte
	Header http.Header
}

// Response is the raw result of a completed exchange: the HTTP status code
// and the response body, read in full. Interpretation of both is left to
// the envelope parser.
type Response struct {
	Status int
	Body   []byte
}

// Transport sends a single request and returns the raw response.
//
// Implementations must not retry, classify, or otherwise reinterpret the
// response: a non-2xx status is a valid Response, not an error. The error
// return is reserved for transport-level failures (connection refused,
// timeout, cancelled context), which the SDK propagates to callers
// unchanged.
type Transport interface {
	Send(ctx context.Context, req Request) (Response, error)
}

// ============================================================================
// HTTP Transport
// ============================================================================

// HTTPTransport is the production Transport backed by net/http. Every
// outgoing request is stamped with a ULID X-Request-Id header for
// correlation with server logs.
type HTTPTransport struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewHTTPTransport creates an HTTP transport for the given base URL with a
// 10 second request timeout.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send performs the HTTP exchange and reads the response body in full.
func (t *HTTPTransport) Send(ctx context.Context, req Request) (Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, t.BaseURL+req.Path, body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}

	// Stamp the context so every log line for this exchange carries the
	// same req_id the server sees in the X-Request-Id header.
	requestID := reqid.New()
	ctx = slogx.WithRequestID(slogx.WithContext(ctx, t.logger(ctx)), requestID)
	httpReq.Header.Set("X-Request-Id", requestID)
	if len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	slogx.FromContext(ctx).DebugContext(ctx, "api request completed",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
	)

	return Response{Status: resp.StatusCode, Body: respBody}, nil
}

// logger prefers the configured logger, falling back to a logger carried
// in the context (if any) and finally the process default.
func (t *HTTPTransport) logger(ctx context.Context) *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slogx.FromContext(ctx)
}
