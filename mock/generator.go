package mock

import (
	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure DataGenerator implements meshmcp.DataGenerator.
var _ meshmcp.DataGenerator = (*DataGenerator)(nil)

// DataGenerator is a mock implementation of meshmcp.DataGenerator.
type DataGenerator struct {
	GenerateFn func(dataType string, count int) ([]map[string]any, error)
}

func (g *DataGenerator) Generate(dataType string, count int) ([]map[string]any, error) {
	return g.GenerateFn(dataType, count)
}
