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

package bing_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/alan-mat/bing/bing"
)

func TestDefaultConfig(t *testing.T) {
	expected := bing.Config{
		BaseURI:          "https://api.datamarket.azure.com/Bing/Search/",
		UserAgent:        "Bing Search Client for Go",
		RequestTimeoutMs: 5000,
		HTTPMethod:       "GET",
	}
	if diff := cmp.Diff(expected, bing.DefaultConfig()); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	c := bing.New(bing.Config{Credential: "secret", RequestTimeoutMs: 100})

	expected := bing.DefaultConfig()
	expected.Credential = "secret"
	expected.RequestTimeoutMs = 100
	if diff := cmp.Diff(expected, c.Config()); diff != "" {
		t.Errorf("client config mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	base := bing.Config{
		BaseURI:          "https://example.com/",
		Credential:       "base-key",
		UserAgent:        "base-agent",
		RequestTimeoutMs: 1000,
		HTTPMethod:       "GET",
	}
	baseCopy := base

	tests := []struct {
		name     string
		override bing.Config
		expected bing.Config
	}{
		{
			name:     "empty override",
			override: bing.Config{},
			expected: base,
		},
		{
			name:     "single field",
			override: bing.Config{Credential: "other-key"},
			expected: bing.Config{
				BaseURI:          "https://example.com/",
				Credential:       "other-key",
				UserAgent:        "base-agent",
				RequestTimeoutMs: 1000,
				HTTPMethod:       "GET",
			},
		},
		{
			name: "every field",
			override: bing.Config{
				BaseURI:             "https://other.example.com/",
				Credential:          "k",
				UserAgent:           "ua",
				RequestTimeoutMs:    42,
				AdditionalURIParams: "Market='en-US'",
				HTTPMethod:          "POST",
			},
			expected: bing.Config{
				BaseURI:             "https://other.example.com/",
				Credential:          "k",
				UserAgent:           "ua",
				RequestTimeoutMs:    42,
				AdditionalURIParams: "Market='en-US'",
				HTTPMethod:          "POST",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bing.Merge(base, tt.override)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("merge mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(baseCopy, base); diff != "" {
				t.Errorf("base config was modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeCannotClearField(t *testing.T) {
	base := bing.Config{AdditionalURIParams: "Market=%27en-US%27", UserAgent: "ua"}

	got := bing.Merge(base, bing.Config{AdditionalURIParams: "", UserAgent: "other"})
	if got.AdditionalURIParams != "Market=%27en-US%27" {
		t.Errorf("expected zero override to keep base params, got '%s'", got.AdditionalURIParams)
	}
	if got.UserAgent != "other" {
		t.Errorf("expected user agent 'other', got '%s'", got.UserAgent)
	}
}

func TestConfigTimeout(t *testing.T) {
	cases := map[int]time.Duration{
		5000: 5 * time.Second,
		1:    time.Millisecond,
		0:    0,
		-10:  0,
	}
	for ms, expected := range cases {
		got := bing.Config{RequestTimeoutMs: ms}.Timeout()
		if got != expected {
			t.Errorf("timeout for %dms, expected %v, got %v", ms, expected, got)
		}
	}
}

func TestConfigLogValueRedactsCredential(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("config", "cfg", bing.Config{Credential: "super-secret", UserAgent: "ua"})

	out := buf.String()
	if strings.Contains(out, "super-secret") {
		t.Errorf("credential leaked into log output: %s", out)
	}
	if !strings.Contains(out, "cfg.credential=[redacted]") {
		t.Errorf("expected redacted credential in log output, got %s", out)
	}
	if !strings.Contains(out, "cfg.user_agent=ua") {
		t.Errorf("expected user agent in log output, got %s", out)
	}
}
