package main

import (
	"fmt"
)

// Run executes the sweep command.
func (c *SweepCmd) Run(deps *Dependencies) error {
	n := deps.Invalidator.Sweep(deps.Ctx)
	fmt.Fprintf(deps.Stdout, "refreshed %d expired entries\n", n)
	return nil
}
