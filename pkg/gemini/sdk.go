package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"google.golang.org/genai"
)

// Client sends prompts through the official `genai` SDK rather than a raw
// HTTP request.
type Client struct {
	client *genai.Client
	model  string
	logger *log.Logger
}

// NewClient builds an SDK client for `model`. `hc` may be nil, in which case
// the SDK picks its own HTTP client.
func NewClient(
	ctx context.Context,
	apiKey, model string,
	hc *http.Client,
	logger *log.Logger,
) (*Client, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c, err := genai.NewClient(
		ctx,
		&genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: hc,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &Client{
		client: c,
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends `prompt` as a single user turn and returns the text of the
// first candidate. No retries are made.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			c.logger.Warnf("API error: %d %s", apiErr.Code, apiErr.Message)
		}

		return "", errors.Wrap(err, "failed to generate content")
	}

	c.logger.Debugf("%s responded in %s", c, time.Since(start))

	return res.Text(), nil
}

func (c *Client) String() string {
	return fmt.Sprintf("Google Gemini %s", c.model)
}
