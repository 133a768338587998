package main

import (
	"context"
	"io"

	"github.com/pwalen/vitalwiki"
	"github.com/pwalen/vitalwiki/vital"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Articles *vital.Service
	Session  vitalwiki.SessionService
	Logs     vitalwiki.ReadLogStore

	// ReadLog is the log bound to the current user: remote when a
	// session token is present, local otherwise.
	ReadLog vitalwiki.ReadLog

	// Token is the persisted session token, empty when logged out.
	Token string

	// Sessions persists the token between invocations.
	Sessions *sessionFile
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Random     RandomCmd     `cmd:"" help:"Pick a random article from a category"`
	Export     ExportCmd     `cmd:"" help:"Export an article as txt or pdf"`
	Log        LogCmd        `cmd:"" help:"Manage the read log"`
	Register   RegisterCmd   `cmd:"" help:"Create an account"`
	Login      LoginCmd      `cmd:"" help:"Log in and store the session"`
	Logout     LogoutCmd     `cmd:"" help:"Log out and clear the session"`
	Whoami     WhoamiCmd     `cmd:"" help:"Show the logged-in user"`
	Categories CategoriesCmd `cmd:"" help:"List available categories"`
	Serve      ServeCmd      `cmd:"" help:"Run the HTTP API server"`
}

// RandomCmd is the "random" subcommand.
type RandomCmd struct {
	Category string `arg:"" help:"Category name (physics, technology, economics)"`
	Format   string `short:"f" enum:",txt,pdf" default:"" help:"Export the article instead of printing its URL"`
	Output   string `short:"o" default:"." help:"Directory for exported files"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Format string `short:"f" enum:"txt,pdf" default:"txt" help:"Export format"`
	Output string `short:"o" default:"." help:"Directory for exported files"`
}

// LogCmd groups the read-log subcommands.
type LogCmd struct {
	List   LogListCmd   `cmd:"" default:"1" help:"List read articles, most recent first"`
	Remove LogRemoveCmd `cmd:"" help:"Remove an entry by its list position"`
}

// LogListCmd is the "log list" subcommand.
type LogListCmd struct{}

// LogRemoveCmd is the "log remove" subcommand.
type LogRemoveCmd struct {
	Position int `arg:"" help:"1-based position from 'log list'"`
}

// RegisterCmd is the "register" subcommand.
type RegisterCmd struct {
	Username string `arg:"" help:"Username"`
	Password string `arg:"" help:"Password"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Username string `arg:"" help:"Username"`
	Password string `arg:"" help:"Password"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// WhoamiCmd is the "whoami" subcommand.
type WhoamiCmd struct{}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
