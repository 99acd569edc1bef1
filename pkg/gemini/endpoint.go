package gemini

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1/models"
	DefaultModel   = "gemini-pro"
	DefaultPrompt  = "Write a short greeting."
)

// Endpoint is the `generateContent` method of one model.
type Endpoint struct {
	BaseURL string
	Model   string
}

func (e Endpoint) String() string {
	return fmt.Sprintf(
		"%s/%s:generateContent",
		strings.TrimRight(e.BaseURL, "/"),
		e.Model,
	)
}

// URL returns the endpoint with `key` as its query string. The key is placed
// into the query verbatim, without escaping, so the server sees exactly the
// characters that were configured.
func (e Endpoint) URL(key string) (*url.URL, error) {
	u, err := url.Parse(e.String())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", e.BaseURL)
	}

	u.RawQuery = "key=" + key

	return u, nil
}
