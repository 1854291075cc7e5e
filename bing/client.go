// Copyright 2025 Alan Matykiewicz
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the
// Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.

// Package bing is a client for the Bing Search API verticals. A call builds
// the request URI from the query and vertical, authenticates with the account
// key and normalizes the response body into parsed JSON or an error.
package bing

import (
	"context"
	"encoding/json"
	"log/slog"
	gohttp "net/http"
	"net/url"
	"strings"

	"github.com/alan-mat/bing/http"
)

const (
	VerticalWeb                 = "Web"
	VerticalImage               = "Image"
	VerticalVideo               = "Video"
	VerticalNews                = "News"
	VerticalRelatedSearch       = "RelatedSearch"
	VerticalSpellingSuggestions = "SpellingSuggestions"
	VerticalComposite           = "Composite"
)

// Transport performs one HTTP exchange. *http.Client satisfies it.
type Transport interface {
	Do(ctx context.Context, r http.Request) (*http.Response, error)
}

// Completion receives the outcome of an async search. It is called exactly
// once, from a goroutine owned by the client.
type Completion func(*Result, error)

type Client struct {
	config    Config
	transport Transport
	logger    *slog.Logger
}

type Option func(*Client)

func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client. Zero fields of cfg fall back to DefaultConfig. New
// never fails; a missing or wrong credential only shows up when searching.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		config:    Merge(DefaultConfig(), cfg),
		transport: http.NewClient(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// Search queries the Web vertical.
func (c *Client) Search(ctx context.Context, query string, override *Config) (*Result, error) {
	return c.SearchVertical(ctx, query, VerticalWeb, override)
}

// ImageSearch queries the Image vertical.
func (c *Client) ImageSearch(ctx context.Context, query string, override *Config) (*Result, error) {
	return c.SearchVertical(ctx, query, VerticalImage, override)
}

func (c *Client) SearchAsync(ctx context.Context, query string, override *Config, done Completion) error {
	return c.SearchVerticalAsync(ctx, query, VerticalWeb, override, done)
}

func (c *Client) ImageSearchAsync(ctx context.Context, query string, override *Config, done Completion) error {
	return c.SearchVerticalAsync(ctx, query, VerticalImage, override, done)
}

// SearchVerticalAsync runs SearchVertical in its own goroutine and hands
// the outcome to done. A nil done is rejected before anything is sent.
func (c *Client) SearchVerticalAsync(ctx context.Context, query, vertical string, override *Config, done Completion) error {
	if done == nil {
		return ErrInvalidUsage
	}

	go func() {
		done(c.SearchVertical(ctx, query, vertical, override))
	}()

	return nil
}

// SearchVertical queries an arbitrary vertical. The override, if any, is
// merged onto a copy of the client configuration for this call only.
//
// A non-nil Result may come back together with an error: a *RemoteServiceError
// when the body was not JSON, or a *TransportError when the body could not
// be read. Connection failures and timeouts return a nil Result. A nil ctx is
// treated as context.Background().
func (c *Client) SearchVertical(ctx context.Context, query, vertical string, override *Config) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := c.config
	if override != nil {
		cfg = Merge(cfg, *override)
	}

	uri := BuildURI(cfg, vertical, query)
	c.logger.Debug("requesting", "method", cfg.HTTPMethod, "vertical", vertical, "uri", uri)

	resp, err := c.transport.Do(ctx, http.Request{
		Method:   cfg.HTTPMethod,
		URI:      uri,
		Username: cfg.Credential,
		Password: cfg.Credential,
		Header:   gohttp.Header{"User-Agent": {cfg.UserAgent}},
		Timeout:  cfg.Timeout(),
	})
	if err != nil {
		c.logger.Debug("request failed", "vertical", vertical, "err", err)
		err = &TransportError{Method: cfg.HTTPMethod, URI: uri, Err: err}
	}

	return c.normalize(resp, err)
}

func (c *Client) normalize(resp *http.Response, err error) (*Result, error) {
	if resp == nil {
		return nil, err
	}

	res := &Result{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Raw:        resp.Body,
	}

	// an absent body passes through untouched
	if len(resp.Body) == 0 {
		return res, err
	}

	var body any
	if jsonErr := json.Unmarshal(resp.Body, &body); jsonErr != nil {
		c.logger.Debug("failed to parse result", "status", resp.StatusCode, "body", string(resp.Body))
		if err == nil {
			err = &RemoteServiceError{
				StatusCode: resp.StatusCode,
				Message:    strings.ToValidUTF8(string(resp.Body), "\uFFFD"),
			}
		}
		return res, err
	}

	res.Body = body
	res.parsed = true
	return res, err
}

// BuildURI returns the request URI for a query against a vertical:
//
//	{BaseURI}{vertical}?$format=json&[{AdditionalURIParams}&]Query=%27{query}%27
//
// The query is wrapped in single quotes, the service's string literal syntax,
// before being encoded.
func BuildURI(cfg Config, vertical, query string) string {
	var b strings.Builder
	b.WriteString(cfg.BaseURI)
	b.WriteString(vertical)
	b.WriteString("?$format=json&")
	if cfg.AdditionalURIParams != "" {
		b.WriteString(cfg.AdditionalURIParams)
		b.WriteByte('&')
	}
	b.WriteString(url.Values{"Query": {"'" + query + "'"}}.Encode())
	return b.String()
}
