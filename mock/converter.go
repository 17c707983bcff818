package mock

import (
	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure Converter implements meshmcp.Converter.
var _ meshmcp.Converter = (*Converter)(nil)

// Converter is a mock implementation of meshmcp.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
