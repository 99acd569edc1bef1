package network

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var ErrNilURL = errors.New("url cannot be nil")

// Response is an HTTP result kept as-is. The body is never decoded.
type Response struct {
	StatusCode int
	Body       string
}

// OK reports whether the status code is exactly 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

type HttpRequestClient struct {
	hc *http.Client
	u  *url.URL
	l  *log.Logger
}

// NewHttpRequestClient makes a client that posts to `u`. A `timeout` of 0
// means requests may block for as long as the network lets them.
func NewHttpRequestClient(
	u *url.URL,
	timeout time.Duration,
	logger *log.Logger,
) (*HttpRequestClient, error) {
	if u == nil {
		return nil, ErrNilURL
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	hc := &http.Client{Timeout: timeout}

	return &HttpRequestClient{
		hc: hc,
		u:  u,
		l:  logger,
	}, nil
}

// WithTransport swaps the round tripper used by the underlying client.
func (h *HttpRequestClient) WithTransport(rt http.RoundTripper) *HttpRequestClient {
	h.hc.Transport = rt
	return h
}

// PreparePost prepares a body for a POST request, then returns a function that
// executes that POST request.
func (h *HttpRequestClient) PreparePost(body any) (
	func(context.Context) (*Response, error),
	error,
) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare http request body")
	}

	return func(ctx context.Context) (*Response, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, h.u.String(),
			bytes.NewReader(b),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create request")
		}

		req.Header.Set("Content-Type", "application/json")

		h.l.Debugf("POST %s://%s%s", h.u.Scheme, h.u.Host, h.u.Path)

		res, err := h.hc.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "failed to send request")
		}

		defer res.Body.Close()

		resBody, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read response body")
		}

		h.l.Debug("response received", "status", res.StatusCode, "bytes", len(resBody))

		return &Response{
			StatusCode: res.StatusCode,
			Body:       string(resBody),
		}, nil
	}, nil
}
