package tools_test

import (
	"testing"

	"github.com/lukeylias/MeshMCP/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByUseCase(t *testing.T) {
	t.Parallel()

	t.Run("pattern match scores 1.0", func(t *testing.T) {
		t.Parallel()

		suggestions := tools.SearchByUseCase("a form for new member signups")
		require.NotEmpty(t, suggestions)
		assert.Equal(t, 1.0, suggestions[0].RelevanceScore)

		names := suggestionNames(suggestions)
		assert.Contains(t, names, "Form")
		assert.Contains(t, names, "Input")
	})

	t.Run("keyword match scores 0.7", func(t *testing.T) {
		t.Parallel()

		suggestions := tools.SearchByUseCase("pick a date")
		require.NotEmpty(t, suggestions)
		for _, s := range suggestions {
			assert.Equal(t, 0.7, s.RelevanceScore)
		}
		assert.Contains(t, suggestionNames(suggestions), "Date Picker")
	})

	t.Run("no match falls back to general suggestions", func(t *testing.T) {
		t.Parallel()

		suggestions := tools.SearchByUseCase("quantum entanglement")
		require.NotEmpty(t, suggestions)
		for _, s := range suggestions {
			assert.Equal(t, 0.3, s.RelevanceScore)
		}
	})

	t.Run("duplicates keep the highest score", func(t *testing.T) {
		t.Parallel()

		// "data" and "grid" keywords both suggest Table.
		suggestions := tools.SearchByUseCase("show data in a grid")
		seen := make(map[string]int)
		for _, s := range suggestions {
			seen[s.Name]++
		}
		for name, count := range seen {
			assert.Equal(t, 1, count, name)
		}
	})

	t.Run("results are sorted by relevance descending", func(t *testing.T) {
		t.Parallel()

		suggestions := tools.SearchByUseCase("table with filters")
		for i := 1; i < len(suggestions); i++ {
			assert.GreaterOrEqual(t, suggestions[i-1].RelevanceScore, suggestions[i].RelevanceScore)
		}
	})
}

func suggestionNames(suggestions []tools.Suggestion) []string {
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}
	return names
}

func TestGeneratePrototype(t *testing.T) {
	t.Parallel()

	t.Run("table description produces a data table", func(t *testing.T) {
		t.Parallel()

		code := tools.GeneratePrototype("a table of members", nil, true)
		assert.Contains(t, code, "DataTableComponent")
		assert.Contains(t, code, "useState")
		assert.Contains(t, code, "import { Table, Select, Button, Input, Container } from '@nib/mesh-ds-react';")
	})

	t.Run("table without data omits state wiring", func(t *testing.T) {
		t.Parallel()

		code := tools.GeneratePrototype("a list of claims", nil, false)
		assert.Contains(t, code, "DataTableComponent")
		assert.NotContains(t, code, "useState")
	})

	t.Run("form description produces a form", func(t *testing.T) {
		t.Parallel()

		code := tools.GeneratePrototype("a signup form", nil, true)
		assert.Contains(t, code, "FormComponent")
		assert.Contains(t, code, "FormControl")
		assert.Contains(t, code, "Submit Application")
	})

	t.Run("dashboard description produces summary cards", func(t *testing.T) {
		t.Parallel()

		code := tools.GeneratePrototype("an overview dashboard", nil, true)
		assert.Contains(t, code, "DashboardComponent")
		assert.Contains(t, code, "Total Members")
	})

	t.Run("other descriptions produce a generic component", func(t *testing.T) {
		t.Parallel()

		code := tools.GeneratePrototype("a hero banner", []string{"Hero Panel", "Button"}, true)
		assert.Contains(t, code, "CustomComponent")
		assert.Contains(t, code, "import { Hero Panel, Button } from '@nib/mesh-ds-react';")
		assert.Contains(t, code, "a hero banner")
	})

	t.Run("generic component defaults its imports", func(t *testing.T) {
		t.Parallel()

		code := tools.GeneratePrototype("something else", nil, true)
		assert.Contains(t, code, "import { Container, Card, Button } from '@nib/mesh-ds-react';")
	})
}
