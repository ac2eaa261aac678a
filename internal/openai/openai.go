// Package openai is the only concrete provider implementation: hand-built
// request/response codecs over the OpenAI HTTP API for the capabilities the
// CLI uses (chat completions, embeddings, speech, files, fine-tuning jobs).
package openai

import (
	"net/http"
	"net/url"
	"strings"
)

const providerName = "openai"

type Config struct {
	APIKey     string
	BaseURL    string
	APIPrefix  string
	Headers    map[string]string
	HTTPClient *http.Client
}

// Client implements the provider capability interfaces. The zero Config gets
// the public endpoint defaults; APIKey is always the caller's problem.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/v1"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{cfg: cfg}
}

func (c *Client) endpointURL(path string) (string, error) {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	prefix := strings.TrimRight(c.cfg.APIPrefix, "/")
	u, err := url.Parse(base + prefix + path)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)
	for k, v := range c.cfg.Headers {
		h.Set(k, v)
	}
	return h
}
