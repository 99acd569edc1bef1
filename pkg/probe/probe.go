package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"codeberg.org/n30w/gemprobe/pkg/gemini"
	"codeberg.org/n30w/gemprobe/pkg/network"
)

// Probe performs one request against the Gemini API and prints what came
// back. It is meant to be run once.
type Probe struct {
	cfg       Config
	out       io.Writer
	logger    *log.Logger
	lookup    func(string) string
	transport http.RoundTripper
}

type Option func(*Probe)

// WithLookup replaces `os.Getenv` as the source of the credential.
func WithLookup(f func(string) string) Option {
	return func(p *Probe) { p.lookup = f }
}

// WithTransport routes every request, raw or SDK, through `rt`.
func WithTransport(rt http.RoundTripper) Option {
	return func(p *Probe) { p.transport = rt }
}

func New(
	cfg Config,
	out io.Writer,
	logger *log.Logger,
	opts ...Option,
) (*Probe, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Probe{
		cfg:    cfg,
		out:    out,
		logger: logger,
		lookup: os.Getenv,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Request is the outbound call, built once per run.
type Request struct {
	URL  *url.URL
	Body *gemini.GenerateContentRequest
}

// BuildRequest places `cred` into the `key` query parameter of the configured
// endpoint and wraps the prompt in a single content part.
func (p *Probe) BuildRequest(cred Credential) (*Request, error) {
	u, err := p.cfg.endpoint().URL(string(cred))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request url")
	}

	return &Request{
		URL:  u,
		Body: gemini.NewTextRequest(p.cfg.Prompt),
	}, nil
}

// Run loads the credential, sends the request and prints the outcome. Failures
// are printed and swallowed; Run never aborts the process.
func (p *Probe) Run(ctx context.Context) {
	cred := LoadCredential(p.cfg.KeyEnv, p.lookup)

	p.printf("API Key available: %t\n", cred.Present())
	p.printf("API Key length: %d\n", cred.Len())

	p.logger.Debug("probe starting", "mode", p.cfg.Mode, "model", p.cfg.Model)

	var err error

	switch p.cfg.Mode {
	case ModeSDK:
		err = p.runSDK(ctx, cred)
	default:
		err = p.runRaw(ctx, cred)
	}

	if err != nil {
		p.logger.Debug("probe failed", "err", err)
		p.printf("Error: %v\n", err)
	}
}

func (p *Probe) runRaw(ctx context.Context, cred Credential) error {
	req, err := p.BuildRequest(cred)
	if err != nil {
		return err
	}

	hc, err := network.NewHttpRequestClient(req.URL, p.cfg.Timeout, p.logger)
	if err != nil {
		return err
	}

	if p.transport != nil {
		hc = hc.WithTransport(p.transport)
	}

	post, err := hc.PreparePost(req.Body)
	if err != nil {
		return err
	}

	p.printf("Making API request...\n")

	res, err := post(ctx)
	if err != nil {
		return err
	}

	p.report(res)

	return nil
}

func (p *Probe) runSDK(ctx context.Context, cred Credential) error {
	var hc *http.Client
	if p.transport != nil || p.cfg.Timeout > 0 {
		hc = &http.Client{Transport: p.transport, Timeout: p.cfg.Timeout}
	}

	p.printf("Making API request...\n")

	c, err := gemini.NewClient(ctx, string(cred), p.cfg.Model, hc, p.logger)
	if err != nil {
		return err
	}

	text, err := c.Generate(ctx, p.cfg.Prompt)
	if err != nil {
		return err
	}

	p.printf("Response: %s\n", text)
	p.printf("API access successful!\n")

	return nil
}

// report prints the status and body. The label is presentation only; a non-200
// status is a valid outcome.
func (p *Probe) report(res *network.Response) {
	p.printf("Status code: %d\n", res.StatusCode)
	p.printf("Response: %s\n", res.Body)

	if res.OK() {
		p.printf("API access successful!\n")
	} else {
		p.printf("API access failed.\n")
	}
}

func (p *Probe) printf(format string, a ...any) {
	_, err := fmt.Fprintf(p.out, format, a...)
	if err != nil {
		p.logger.Error("failed to write probe output", "err", err)
	}
}
