// Command mdnative renders markdown into a native element tree and paints
// it for the terminal.
//
// Usage:
//
//	mdnative [flags] [inputs...]
//
// Inputs are file paths or doublestar patterns (docs/**/*.md). Markdown is
// read from stdin when no input is given.
//
// Flags:
//
//	-s, --styles string   User stylesheet (.json, .yaml or .yml)
//	-f, --format string   Output format: ansi, json (default "ansi")
//	-w, --width int       Output width (0 uses terminal width if available)
//	    --gfm             Enable GitHub Flavored Markdown (default true)
//	    --footnotes       Enable footnotes
//	    --html-text       Replace raw HTML with its visible text
//	-p, --preview         Open a scrollable preview instead of printing
//	-v, --verbose         Log debug information to stderr
//	    --version         Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/mdnative"
	bt "github.com/fwojciec/mdnative/bubbletea"
	"github.com/fwojciec/mdnative/goldmark"
	mdjson "github.com/fwojciec/mdnative/json"
	"github.com/fwojciec/mdnative/lipgloss"
	"github.com/spf13/pflag"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("github.com/fwojciec/mdnative")
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mdnative: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	styles    string
	format    string
	width     int
	gfm       bool
	footnotes bool
	htmlText  bool
	preview   bool
	verbose   bool
	version   bool
}

func parseFlags(args []string, stderr io.Writer) (config, []string, error) {
	var cfg config
	flags := pflag.NewFlagSet("mdnative", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.styles, "styles", "s", "", "User stylesheet (.json, .yaml or .yml)")
	flags.StringVarP(&cfg.format, "format", "f", "ansi", "Output format: ansi, json")
	flags.IntVarP(&cfg.width, "width", "w", 0, "Output width (0 uses terminal width if available)")
	flags.BoolVar(&cfg.gfm, "gfm", true, "Enable GitHub Flavored Markdown")
	flags.BoolVar(&cfg.footnotes, "footnotes", false, "Enable footnotes")
	flags.BoolVar(&cfg.htmlText, "html-text", false, "Replace raw HTML with its visible text")
	flags.BoolVarP(&cfg.preview, "preview", "p", false, "Open a scrollable preview instead of printing")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log debug information to stderr")
	flags.BoolVar(&cfg.version, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdnative [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return config{}, nil, err
	}
	switch cfg.format {
	case "ansi", "json":
	default:
		return config{}, nil, fmt.Errorf("%w: output %q", mdnative.ErrUnsupportedFormat, cfg.format)
	}
	if cfg.width < 0 {
		return config{}, nil, fmt.Errorf("invalid width %d", cfg.width)
	}
	return cfg, flags.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, inputs, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.version {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return nil
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var user mdnative.StyleSheet
	if cfg.styles != "" {
		user, err = loadStyleSheet(cfg.styles)
		if err != nil {
			return fmt.Errorf("load styles: %w", err)
		}
		logger.Debug("loaded stylesheet", "path", cfg.styles, "entries", len(user))
	}

	sources, err := readSources(inputs, stdin)
	if err != nil {
		return err
	}

	var parserOpts []goldmark.Option
	if cfg.gfm {
		parserOpts = append(parserOpts, goldmark.WithGFM())
	}
	if cfg.footnotes {
		parserOpts = append(parserOpts, goldmark.WithFootnotes())
	}
	if cfg.htmlText {
		parserOpts = append(parserOpts, goldmark.WithHTMLText())
	}
	renderer := mdnative.NewRenderer(goldmark.NewParser(parserOpts...))

	docs := make([]bt.Document, 0, len(sources))
	for _, src := range sources {
		el, err := renderer.Render(src.text, mdnative.WithStyleSheet(user))
		if err != nil {
			return fmt.Errorf("render %s: %w", src.name, err)
		}
		logger.Debug("rendered", "input", src.name, "size", humanize.Bytes(uint64(len(src.text))))
		docs = append(docs, bt.Document{Title: src.name, Element: el})
	}

	painter := lipgloss.NewPainter()
	if cfg.preview {
		if !isTerminal(stdout) {
			return errors.New("preview requires a terminal")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := bt.Run(ctx, bt.New(docs, painter)); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		return nil
	}

	switch cfg.format {
	case "json":
		return writeJSON(stdout, docs)
	default:
		width := resolveWidth(cfg.width, stdout)
		logger.Debug("painting", "width", width, "documents", len(docs))
		return writeANSI(stdout, painter, docs, width)
	}
}

func writeANSI(w io.Writer, p mdnative.Painter, docs []bt.Document, width int) error {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		out = append(out, p.Paint(doc.Element, width))
	}
	if _, err := fmt.Fprintln(w, strings.Join(out, "\n\n")); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, docs []bt.Document) error {
	for _, doc := range docs {
		data, err := mdjson.MarshalElement(doc.Element)
		if err != nil {
			return fmt.Errorf("encode %s: %w", doc.Title, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
