package tools

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion is one component recommendation for a use case.
type Suggestion struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	RelevanceScore float64 `json:"relevanceScore"`
	Reason         string  `json:"reason"`
}

type useCaseMapping struct {
	pattern     string
	components  []string
	description string
}

// Ordered so that the first matching pattern wins.
var useCaseMappings = []useCaseMapping{
	{"table", []string{"Table", "Simple Table", "Button", "Select", "Input"}, "Data display with optional filtering and actions"},
	{"filter", []string{"Select", "Input", "Checkbox", "Button", "Date Picker"}, "Filtering and search controls"},
	{"form", []string{"Form", "Form Control", "Input", "Select", "Checkbox", "Button", "Textarea"}, "User input and data collection"},
	{"dashboard", []string{"Card", "Container", "Grid", "Stats", "Progress", "Button"}, "Overview and summary displays"},
	{"navigation", []string{"Header", "Menu", "Breadcrumb", "Tabs", "Link"}, "Site navigation and wayfinding"},
	{"search", []string{"Input", "Button", "Card", "Select", "Autocomplete"}, "Search interfaces and results"},
	{"layout", []string{"Container", "Grid", "Stack", "Section", "Divider"}, "Page structure and organization"},
	{"modal", []string{"Modal", "Button", "Form", "Card"}, "Overlays and dialog boxes"},
	{"list", []string{"Card", "Stack", "Button", "Tag", "Divider"}, "Item lists and collections"},
	{"upload", []string{"File Upload", "Button", "Progress", "Alert"}, "File handling and upload interfaces"},
}

var keywordMappings = []useCaseMapping{
	{"data", []string{"Table", "Simple Table", "Card"}, ""},
	{"input", []string{"Input", "Form", "Select", "Textarea"}, ""},
	{"button", []string{"Button", "Utility Button"}, ""},
	{"display", []string{"Card", "Alert", "Info Box"}, ""},
	{"select", []string{"Select", "Dropdown", "Autocomplete"}, ""},
	{"date", []string{"Date Picker", "Date Textbox"}, ""},
	{"text", []string{"Input", "Textarea", "Heading"}, ""},
	{"grid", []string{"Table", "Container", "Grid"}, ""},
	{"chart", []string{"Progress", "Stats"}, ""},
	{"menu", []string{"Header", "Tabs", "Navigation"}, ""},
}

var generalComponents = []string{"Container", "Card", "Button", "Input", "Select"}

// SearchByUseCase suggests components for a described UI pattern. Pattern
// matches score 1.0, keyword matches 0.7, and the general fallback 0.3;
// duplicates keep their highest score.
func SearchByUseCase(useCase string) []Suggestion {
	query := strings.ToLower(useCase)

	var suggestions []Suggestion

	for _, m := range useCaseMappings {
		if !strings.Contains(query, m.pattern) {
			continue
		}
		for _, name := range m.components {
			suggestions = append(suggestions, Suggestion{
				Name:           name,
				Description:    m.description,
				RelevanceScore: 1.0,
				Reason:         fmt.Sprintf("Commonly used in %s interfaces", m.pattern),
			})
		}
		break
	}

	if len(suggestions) == 0 {
		for _, m := range keywordMappings {
			if !strings.Contains(query, m.pattern) {
				continue
			}
			for _, name := range m.components {
				suggestions = append(suggestions, Suggestion{
					Name:           name,
					Description:    fmt.Sprintf("Relevant for %s-related interfaces", m.pattern),
					RelevanceScore: 0.7,
					Reason:         fmt.Sprintf("Contains keyword: %s", m.pattern),
				})
			}
		}
	}

	if len(suggestions) == 0 {
		for _, name := range generalComponents {
			suggestions = append(suggestions, Suggestion{
				Name:           name,
				Description:    "General-purpose component",
				RelevanceScore: 0.3,
				Reason:         "Commonly used component",
			})
		}
	}

	best := make(map[string]Suggestion, len(suggestions))
	order := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		prior, seen := best[s.Name]
		if !seen {
			order = append(order, s.Name)
		}
		if !seen || prior.RelevanceScore < s.RelevanceScore {
			best[s.Name] = s
		}
	}

	out := make([]Suggestion, 0, len(order))
	for _, name := range order {
		out = append(out, best[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}
