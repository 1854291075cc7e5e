package bing

import (
	"log/slog"
	"time"

	"github.com/alan-mat/bing/http"
)

const (
	DefaultBaseURI          = "https://api.datamarket.azure.com/Bing/Search/"
	DefaultUserAgent        = "Bing Search Client for Go"
	DefaultRequestTimeoutMs = 5000
	DefaultHTTPMethod       = http.MethodGet
)

// Config holds everything needed to issue a search call. The same type is
// used for per-call overrides, where only non-zero fields take effect.
type Config struct {
	// BaseURI is the service root; the vertical name is appended to it
	// verbatim, so it normally ends with a slash.
	BaseURI string `yaml:"base_uri"`

	// Credential is the account key, sent as both basic auth username and
	// password. Empty means no credentials are sent.
	Credential string `yaml:"credential"`

	UserAgent        string `yaml:"user_agent"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms"`

	// AdditionalURIParams is an already encoded query fragment such as
	// "Market='en-US'&Adult='Strict'", inserted before the Query parameter.
	AdditionalURIParams string `yaml:"additional_uri_params"`

	HTTPMethod string `yaml:"http_method"`
}

func DefaultConfig() Config {
	return Config{
		BaseURI:          DefaultBaseURI,
		UserAgent:        DefaultUserAgent,
		RequestTimeoutMs: DefaultRequestTimeoutMs,
		HTTPMethod:       DefaultHTTPMethod,
	}
}

// Merge returns base with every non-zero field of override applied on top.
// Neither argument is modified. A zero field in override means "keep base",
// so an override cannot clear a field such as AdditionalURIParams; use a
// separate Client for that.
func Merge(base, override Config) Config {
	out := base
	if override.BaseURI != "" {
		out.BaseURI = override.BaseURI
	}
	if override.Credential != "" {
		out.Credential = override.Credential
	}
	if override.UserAgent != "" {
		out.UserAgent = override.UserAgent
	}
	if override.RequestTimeoutMs != 0 {
		out.RequestTimeoutMs = override.RequestTimeoutMs
	}
	if override.AdditionalURIParams != "" {
		out.AdditionalURIParams = override.AdditionalURIParams
	}
	if override.HTTPMethod != "" {
		out.HTTPMethod = override.HTTPMethod
	}
	return out
}

// Timeout converts RequestTimeoutMs. Non-positive values disable the limit.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// LogValue keeps the credential out of structured logs.
func (c Config) LogValue() slog.Value {
	cred := ""
	if c.Credential != "" {
		cred = "[redacted]"
	}
	return slog.GroupValue(
		slog.String("base_uri", c.BaseURI),
		slog.String("credential", cred),
		slog.String("user_agent", c.UserAgent),
		slog.Int("request_timeout_ms", c.RequestTimeoutMs),
		slog.String("additional_uri_params", c.AdditionalURIParams),
		slog.String("http_method", c.HTTPMethod),
	)
}
