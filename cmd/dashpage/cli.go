package main

import (
	"context"
	"io"

	"github.com/gurugrv/dashpage"
	"github.com/gurugrv/dashpage/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Sites     dashpage.SiteService
	Files     dashpage.FileService
	Linter    dashpage.Linter
	Converter dashpage.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract files from a generation stream into a site"`
	Apply   ApplyCmd   `cmd:"" help:"Apply an edit stream to one file of a site"`
	Dedupe  DedupeCmd  `cmd:"" help:"Extract shared components from a site's pages"`
	Lint    LintCmd    `cmd:"" help:"Lint all files of a site"`
	Preview PreviewCmd `cmd:"" help:"Render a site file as Markdown"`
	List    ListCmd    `cmd:"" help:"List all sites"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a site and its files"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Name   string `arg:"" help:"Site name"`
	Input  string `short:"i" help:"Read the stream from a file instead of stdin"`
	Out    string `short:"o" help:"Export the site to this directory after saving"`
	Dedupe bool   `short:"d" help:"Extract shared components after the stream completes"`
	Force  bool   `short:"f" help:"Replace any existing files of the site"`
}

// ApplyCmd is the "apply" subcommand.
type ApplyCmd struct {
	Name  string `arg:"" help:"Site name"`
	File  string `arg:"" optional:"" default:"index.html" help:"File to edit"`
	Input string `short:"i" help:"Read the stream from a file instead of stdin"`
}

// DedupeCmd is the "dedupe" subcommand.
type DedupeCmd struct {
	Name string `arg:"" help:"Site name"`
}

// LintCmd is the "lint" subcommand.
type LintCmd struct {
	Name string `arg:"" help:"Site name"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Name string `arg:"" help:"Site name"`
	File string `arg:"" optional:"" default:"index.html" help:"File to preview"`
	Raw  bool   `help:"Print all files as raw labeled sections instead of Markdown"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}
