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

package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alan-mat/bing/bing"
)

type loggingConfig struct {
	Level string `yaml:"level"`
}

type config struct {
	Bing    bing.Config   `yaml:"bing"`
	Logging loggingConfig `yaml:"logging"`
}

// ReadConfig loads a YAML config file. An empty path yields the defaults.
func ReadConfig(path string) (*config, error) {
	conf := config{
		Bing:    bing.DefaultConfig(),
		Logging: loggingConfig{Level: "INFO"},
	}
	if path == "" {
		return &conf, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fileConf config
	if err := yaml.Unmarshal(file, &fileConf); err != nil {
		return nil, err
	}

	conf.Bing = bing.Merge(conf.Bing, fileConf.Bing)
	if fileConf.Logging.Level != "" {
		conf.Logging.Level = fileConf.Logging.Level
	}

	return &conf, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
