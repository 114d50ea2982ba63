package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/fwojciec/tourcopy"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Config    Config
	Logger    *slog.Logger
	Products  tourcopy.ProductService
	Pages     *tourcopy.PageBuilder
	Itinerary tourcopy.ItineraryParser
	FAQ       tourcopy.FAQParser
	Inspector tourcopy.MarkupInspector
	Converter tourcopy.Converter
	Fetcher   tourcopy.Fetcher
	Store     func(dir string) tourcopy.PageStore
}

// readInput returns the contents of path, of Stdin when path is "-", or of
// the remote document when path is an http(s) URL.
func (d *Dependencies) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(d.Stdin)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return d.Fetcher.Fetch(d.Ctx, path)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, tourcopy.Errorf(tourcopy.ENOTFOUND, "file %q not found", path)
	}
	return data, err
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"TOURCOPY_CONFIG" help:"Path to a YAML config file"`
	Verbose bool   `short:"v" help:"Log extraction details to stderr"`

	Import    ImportCmd    `cmd:"" help:"Import products from JSON files or URLs"`
	List      ListCmd      `cmd:"" help:"List stored products"`
	Show      ShowCmd      `cmd:"" help:"Show the assembled page for a product"`
	Itinerary ItineraryCmd `cmd:"" help:"Extract the day-wise itinerary from markup"`
	FAQ       FAQCmd       `cmd:"" name:"faq" help:"Extract FAQ entries from markup"`
	Words     WordsCmd     `cmd:"" help:"Count words in markup files"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a product"`
	Check     CheckCmd     `cmd:"" help:"Check stored products for extraction problems"`
	Export    ExportCmd    `cmd:"" help:"Export every product page as a markdown file"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Files []string `arg:"" help:"JSON files or URLs with a product or an array of products (- for stdin)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" help:"Maximum number of products to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string   `arg:"" help:"Product ID"`
	Expand  []string `short:"e" help:"Section key to expand (repeatable), e.g. overview or package/0"`
	AllFAQ  bool     `name:"all-faq" help:"Show every FAQ entry"`
	OpenFAQ int      `name:"open-faq" help:"Open the n-th visible FAQ entry (1-based)"`
	Format  string   `short:"f" enum:"text,markdown,json,xml" default:"text" help:"Output format (text, markdown, json, xml)"`
}

// ItineraryCmd is the "itinerary" subcommand.
type ItineraryCmd struct {
	File   string `arg:"" help:"Markup file (- for stdin)"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
}

// FAQCmd is the "faq" subcommand.
type FAQCmd struct {
	File   string `arg:"" help:"Markup file (- for stdin)"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
}

// WordsCmd is the "words" subcommand.
type WordsCmd struct {
	Files []string `arg:"" help:"Markup files (- for stdin)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Product ID"`
	Force bool   `help:"Confirm deletion"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Concurrency int `short:"c" default:"4" help:"Concurrent check limit"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Output directory, replaced atomically on success"`
}
