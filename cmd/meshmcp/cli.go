package main

import (
	"context"
	"io"
	"log/slog"

	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/config"
	"github.com/lukeylias/MeshMCP/pipeline"
	"github.com/lukeylias/MeshMCP/tools"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config      config.Config
	Logger      *slog.Logger
	Store       meshmcp.CacheStore
	Registry    *prom.Registry
	Coordinator *pipeline.Coordinator
	Invalidator *pipeline.Invalidator
	Tools       *tools.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve      ServeCmd      `cmd:"" help:"Run the MCP server"`
	Refresh    RefreshCmd    `cmd:"" help:"Force re-extraction of a cache entry"`
	Sweep      SweepCmd      `cmd:"" help:"Refresh all expired cache entries once"`
	Clear      ClearCmd      `cmd:"" help:"Remove all cache entries"`
	Stats      StatsCmd      `cmd:"" help:"Show cache statistics"`
	Components ComponentsCmd `cmd:"" help:"List all known components"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (overrides config)"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Namespace  string `arg:"" help:"Cache namespace (component-list, component-detail, design-tokens)"`
	Identifier string `arg:"" optional:"" default:"all" help:"Entry identifier (component name, token category, or 'all')"`
}

// SweepCmd is the "sweep" subcommand.
type SweepCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm removal"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ComponentsCmd is the "components" subcommand.
type ComponentsCmd struct{}
