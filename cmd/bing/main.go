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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/google/uuid"

	"github.com/alan-mat/bing/bing"
)

const (
	ProgramName   = "bing"
	Version       = "v0.1.0"
	RepositoryUrl = "github.com/alan-mat/bing"
)

type webCmd struct {
	Query []string `arg:"positional,required" help:"search terms"`
}

type imagesCmd struct {
	Query []string `arg:"positional,required" help:"search terms"`
}

type verticalCmd struct {
	Vertical string   `arg:"positional,required" help:"vertical name, e.g. News or Video"`
	Query    []string `arg:"positional,required" help:"search terms"`
}

type args struct {
	Web      *webCmd      `arg:"subcommand:web" help:"search the Web vertical"`
	Images   *imagesCmd   `arg:"subcommand:images" help:"search the Image vertical"`
	Vertical *verticalCmd `arg:"subcommand:vertical" help:"search any vertical"`

	Config    string `arg:"--config,-c" help:"path to a YAML config file"`
	Key       string `arg:"--key,-k,env:BING_ACCOUNT_KEY" help:"account key"`
	BaseURI   string `arg:"--base-uri" help:"service root URI"`
	Timeout   int    `arg:"--timeout,-t" help:"request timeout in milliseconds"`
	Params    string `arg:"--params,-p" help:"additional URI parameters, e.g. Market=%27en-US%27"`
	UserAgent string `arg:"--user-agent" help:"User-Agent header"`
	Verbose   bool   `arg:"--verbose,-v" help:"enable debug logging"`
}

func (args) Version() string {
	return fmt.Sprintf("%s %s", ProgramName, Version)
}

func (args) Epilogue() string {
	return fmt.Sprintf("For more information visit %s", RepositoryUrl)
}

// overrides collects the flags that map onto client configuration.
func (a args) overrides() bing.Config {
	return bing.Config{
		BaseURI:             a.BaseURI,
		Credential:          a.Key,
		UserAgent:           a.UserAgent,
		RequestTimeoutMs:    a.Timeout,
		AdditionalURIParams: a.Params,
	}
}

func main() {
	var args args

	p, err := arg.NewParser(arg.Config{Program: ProgramName}, &args)
	if err != nil {
		log.Fatalf("there was an error in the definition of the Go struct: %v", err)
	}
	p.MustParse(os.Args[1:])

	if p.Subcommand() == nil {
		p.WriteUsage(os.Stdout)
		os.Exit(0)
	}

	conf, err := ReadConfig(args.Config)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	level := parseLogLevel(conf.Logging.Level)
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("id", uuid.NewString())
	slog.SetDefault(logger)

	cfg := bing.Merge(conf.Bing, args.overrides())
	logger.Debug("loaded config", "config", cfg)

	client := bing.New(cfg, bing.WithLogger(logger))

	var vertical string
	var query []string
	switch cmd := p.Subcommand().(type) {
	case *webCmd:
		vertical, query = bing.VerticalWeb, cmd.Query
	case *imagesCmd:
		vertical, query = bing.VerticalImage, cmd.Query
	case *verticalCmd:
		vertical, query = cmd.Vertical, cmd.Query
	default:
		p.FailSubcommand("unrecognized command", p.SubcommandNames()...)
	}

	if err := run(context.Background(), client, vertical, strings.Join(query, " "), os.Stdout); err != nil {
		logger.Error("search failed", "vertical", vertical, "err", err)
		os.Exit(1)
	}
}

// run performs the search and writes the result to w: indented JSON when the
// service returned JSON, the raw body otherwise.
func run(ctx context.Context, client *bing.Client, vertical, query string, w io.Writer) error {
	slog.Info("searching", "vertical", vertical, "query", query)

	res, err := client.SearchVertical(ctx, query, vertical, nil)
	if res != nil {
		if werr := writeResult(w, res); werr != nil {
			return errors.Join(err, werr)
		}
	}
	return err
}

func writeResult(w io.Writer, res *bing.Result) error {
	if !res.JSON() {
		if len(res.Raw) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, string(res.Raw))
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Body)
}
