package main

import (
	"fmt"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Store.Stats(deps.Ctx, time.Now())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meshmcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "entries: %d\n", stats.Total)
	fmt.Fprintf(deps.Stdout, "expired: %d\n", stats.Expired)
	return nil
}
