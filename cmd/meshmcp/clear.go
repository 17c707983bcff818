package main

import (
	"fmt"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stdout, "This removes every cache entry. Re-run with --force to confirm.")
		return nil
	}

	if err := deps.Store.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meshmcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cache cleared.")
	return nil
}
