package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	intconfig "taxiops/internal/config"
	"taxiops/internal/domain"
	"taxiops/internal/metrics"
	"taxiops/internal/utils"
)

const maxResponseBytes = 16 << 20

// Client performs JSON calls against the configured backend endpoints.
// The zero value uses the shared upstream client from config.
type Client struct {
	HTTP      *http.Client
	Endpoints intconfig.Endpoints
	RequestID string
}

// WithRequestID returns a copy that tags logs and outbound headers with id.
func (c Client) WithRequestID(id string) Client {
	c.RequestID = id
	return c
}

func (c Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	if intconfig.Upstream != nil {
		return intconfig.Upstream
	}
	return http.DefaultClient
}

func requireURL(name, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ValidationError{Field: name, Msg: name + " is not configured"}
	}
	return raw, nil
}

// joinPath appends escaped path segments to base.
func joinPath(base string, parts ...string) string {
	out := strings.TrimRight(base, "/")
	for _, p := range parts {
		out += "/" + url.PathEscape(p)
	}
	return out
}

func (c Client) getJSON(ctx context.Context, name, rawURL string, out any) error {
	body, err := c.getRaw(ctx, name, rawURL)
	if err != nil {
		return err
	}
	return decodeBody(name, body, out)
}

func (c Client) getRaw(ctx context.Context, name, rawURL string) ([]byte, error) {
	target, err := requireURL(name, rawURL)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, domain.UpstreamError{Endpoint: name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, name, errorMessage)
}

func (c Client) sendJSON(ctx context.Context, method, name, rawURL string, payload, out any) error {
	if _, err := requireURL(name, rawURL); err != nil {
		return err
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return domain.InternalError{Msg: "encode request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSpace(rawURL), bytes.NewReader(buf))
	if err != nil {
		return domain.UpstreamError{Endpoint: name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, name, errorMessage)
	if err != nil {
		return err
	}
	return decodeBody(name, body, out)
}

// uploadFile posts one file as multipart field "file". Upload failures
// surface only the body's "error" field.
func (c Client) uploadFile(ctx context.Context, name, rawURL, filename string, file io.Reader, out any) error {
	target, err := requireURL(name, rawURL)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return domain.InternalError{Msg: "build upload", Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return domain.InternalError{Msg: "read upload", Err: err}
	}
	if err := mw.Close(); err != nil {
		return domain.InternalError{Msg: "build upload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, &buf)
	if err != nil {
		return domain.UpstreamError{Endpoint: name, Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, name, errorField)
	if err != nil {
		return err
	}
	return decodeBody(name, body, out)
}

func (c Client) do(req *http.Request, name string, message func([]byte) string) ([]byte, error) {
	if c.RequestID != "" {
		req.Header.Set("X-Request-ID", c.RequestID)
	}

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveUpstream(name, req.Method, 0, elapsed)
		utils.LogUpstream(c.RequestID, req.Method, name, 0, elapsed, err)
		return nil, domain.UpstreamError{Endpoint: name, Err: err}
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(name, req.Method, resp.StatusCode, elapsed)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		utils.LogUpstream(c.RequestID, req.Method, name, resp.StatusCode, elapsed, err)
		return nil, domain.UpstreamError{Endpoint: name, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		upErr := domain.UpstreamError{
			Endpoint: name,
			Status:   resp.StatusCode,
			Msg:      message(body),
		}
		utils.LogUpstream(c.RequestID, req.Method, name, resp.StatusCode, elapsed, upErr)
		return nil, upErr
	}

	utils.LogUpstream(c.RequestID, req.Method, name, resp.StatusCode, elapsed, nil)
	return body, nil
}

type errorBody struct {
	Error   any    `json:"error"`
	Message string `json:"message"`
}

// errorMessage pulls a human message out of an error body ({error} or {message}).
func errorMessage(body []byte) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Error.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(payload.Message)
}

// errorField reads only the {error} string of an error body.
func errorField(body []byte) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	s, _ := payload.Error.(string)
	return strings.TrimSpace(s)
}

func decodeBody(name string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.UpstreamError{Endpoint: name, Msg: fmt.Sprintf("invalid response body: %v", err), Err: err}
	}
	return nil
}
