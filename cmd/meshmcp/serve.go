package main

import (
	"fmt"

	meshhttp "github.com/lukeylias/MeshMCP/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.ListenAddr
	}

	// Background sweep keeps hot entries warm so interactive requests
	// rarely pay the extraction latency.
	go deps.Invalidator.Run(deps.Ctx, deps.Config.SweepInterval())

	srv := meshhttp.NewServer(addr, deps.Tools, deps.Registry, deps.Logger)

	fmt.Fprintf(deps.Stdout, "meshmcp serving on %s\n", addr)
	return srv.Run(deps.Ctx)
}
