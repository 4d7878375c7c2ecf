package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/distill"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Distiller distill.Distiller
	Converter distill.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel string `name:"log-level" enum:"debug,info,warn,error" default:"info" env:"DISTILL_LOG_LEVEL" help:"Log level (${enum})"`
	Fallback bool   `env:"DISTILL_FALLBACK" help:"Retry failed extractions with trafilatura"`

	Serve   ServeCmd   `cmd:"" help:"Serve the distill HTTP API"`
	Extract ExtractCmd `cmd:"" help:"Distill HTML files and print the results"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Key          string   `required:"" env:"READABILITY_SERVICE_KEY" help:"Bearer key required on API requests"`
	Addr         string   `default:":3030" env:"DISTILL_ADDR" help:"Listen address"`
	EmailBaseURL string   `name:"email-base-url" default:"https://inbox.demo.com" env:"DISTILL_EMAIL_BASE_URL" help:"Origin for test_run messages"`
	RateLimit    float64  `default:"0" env:"DISTILL_RATE_LIMIT" help:"Requests per second per client (0 disables)"`
	MaxBodyBytes int64    `default:"10485760" env:"DISTILL_MAX_BODY_BYTES" help:"Maximum request body size"`
	Proxies      []string `name:"trusted-proxies" env:"DISTILL_TRUSTED_PROXIES" help:"Proxy IPs or CIDRs allowed to set X-Forwarded-For"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files       []string `arg:"" optional:"" help:"HTML files to distill (- or none reads stdin)"`
	BaseURL     string   `name:"base-url" short:"u" help:"URL the HTML was served from (default: a message under the email base)"`
	Format      string   `short:"f" enum:"json,markdown" default:"json" help:"Output format (${enum})"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent distill limit"`
	Out         string   `short:"o" help:"Write one Markdown file per input to this directory"`
}
