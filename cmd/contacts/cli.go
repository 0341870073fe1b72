package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/contacts"
)

// DefaultURL is the directory page scraped when no URL is given.
const DefaultURL = "https://csie.ncut.edu.tw/content.php?key=86OP82WJQO"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Fetcher  contacts.Fetcher
	Contacts contacts.ContactService
	Runs     contacts.RunService
	Blocks   contacts.BlockCounter
	Renderer *contacts.TableRenderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug   bool          `help:"Log every fetch and storage call to stderr"`
	Timeout time.Duration `default:"5s" help:"HTTP request timeout"`

	Fetch   FetchCmd   `cmd:"" help:"Fetch a directory page, store its contacts and print them"`
	List    ListCmd    `cmd:"" help:"Print stored contacts"`
	History HistoryCmd `cmd:"" help:"List previous fetch runs"`
	Probe   ProbeCmd   `cmd:"" help:"Compare DOM block count with extracted contacts for a page"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL     string `arg:"" optional:"" default:"${default_url}" help:"Directory page URL"`
	Retries int    `short:"r" default:"0" help:"Retries for timeouts and connection errors"`
	Pattern string `help:"Custom extraction regexp with name, title and email groups"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Email string `help:"Only show the contact with this email"`
	Limit int    `short:"n" default:"0" help:"Maximum number of contacts (0 for all)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show runs for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of runs"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL      string `arg:"" optional:"" default:"${default_url}" help:"Directory page URL"`
	Pattern  string `help:"Custom extraction regexp with name, title and email groups"`
	Selector string `help:"CSS selector for member blocks (default div.member_name)"`
}
