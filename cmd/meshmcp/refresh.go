package main

import (
	"fmt"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	key := meshmcp.NewCacheKey(meshmcp.Namespace(c.Namespace), c.Identifier)

	res, err := deps.Invalidator.Refresh(deps.Ctx, key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meshmcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  source=%s  bytes=%d\n", key, res.Entry.Source, len(res.Entry.Value))
	return nil
}
