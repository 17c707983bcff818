package main

import (
	"fmt"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Run executes the components command.
func (c *ComponentsCmd) Run(deps *Dependencies) error {
	resp := deps.Tools.ListComponents(deps.Ctx)
	if resp.Error != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resp.Error.Message)
		return meshmcp.Errorf(meshmcp.EINTERNAL, "%s", resp.Error.Message)
	}

	list, ok := resp.Data.(*[]string)
	if !ok {
		return meshmcp.Errorf(meshmcp.EINTERNAL, "unexpected component list payload")
	}

	for _, name := range *list {
		fmt.Fprintln(deps.Stdout, name)
	}
	if resp.Stale {
		fmt.Fprintln(deps.Stderr, "(served from a stale cache entry)")
	}
	return nil
}
