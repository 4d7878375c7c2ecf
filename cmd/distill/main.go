package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/extract"
	"github.com/fwojciec/distill/goquery"
	"github.com/fwojciec/distill/htmltomarkdown"
	"github.com/fwojciec/distill/readability"
	dslog "github.com/fwojciec/distill/slog"
	"github.com/fwojciec/distill/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load never overrides, so the more specific file goes first.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for "-" and argument-less extract. Defaults to os.Stdin.
	Stdin io.Reader

	// Services for end-to-end testing. Built from flags when nil.
	Distiller distill.Distiller
	Converter distill.Converter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("distill"),
		kong.Description("Extract reader-mode articles and lead images from HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'distill --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel)

	deps.Distiller = m.Distiller
	if deps.Distiller == nil {
		deps.Distiller = newDistiller(deps.Logger, cli.Fallback)
	}
	deps.Converter = m.Converter
	if deps.Converter == nil {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// newDistiller wires the parser, extractors and image selector behind
// logging decorators.
func newDistiller(logger *slog.Logger, fallback bool) distill.Distiller {
	svc := extract.NewService(
		goquery.NewParser(),
		dslog.NewLoggingArticleExtractor(readability.NewExtractor(), "readability", logger),
		dslog.NewLoggingImageSelector(goquery.NewImageSelector(), logger),
	)
	svc.Logger = logger
	if fallback {
		svc.Fallback = dslog.NewLoggingArticleExtractor(trafilatura.NewExtractor(), "trafilatura", logger)
	}
	return dslog.NewLoggingDistiller(svc, logger)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
