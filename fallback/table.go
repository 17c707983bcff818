// Package fallback provides the static fallback table: a versioned,
// in-process list of known keys and minimal records served when live
// extraction fails and no cached value exists.
package fallback

import (
	"encoding/json"
	"strings"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Version identifies the revision of the embedded fallback data. Bump when
// the component list or token defaults change.
const Version = "2024.1"

// Ensure Table implements meshmcp.FallbackTable at compile time.
var _ meshmcp.FallbackTable = (*Table)(nil)

// components is the known component list from the Mesh Design System
// documentation, in the site's display order.
var components = []string{
	"Accordion", "Alert", "Autocomplete", "Button", "Card",
	"Checkbox", "Checkbox Group", "Copy", "Date Picker",
	"Date Textbox", "Divider", "Error Template", "Expander",
	"Expander Group", "Feature Panel", "File Upload", "Footer",
	"Fonts", "Form", "Form Control", "Grow Layout", "Header",
	"Header Footer Layout", "Heading", "Hero Panel", "Icons",
	"Info Box", "Link", "Loader", "Logo", "Modal", "ModeProvider",
	"Overlay", "Product Card", "Progress Stepper", "Radio",
	"Radio Button", "Radio Group", "React HTML", "Select",
	"Simple Table", "Skip Link", "Table", "Tabs", "Tag",
	"Textarea", "Textbox", "Theme", "Tooltip", "Utility Button",
	"Villain Panel",
}

// tokens holds minimal default token values for when the tokens reference
// page cannot be reached.
var tokens = meshmcp.TokenSet{
	meshmcp.TokenColors: {
		"primary":   "#0066CC",
		"secondary": "#6C757D",
		"success":   "#28A745",
	},
	meshmcp.TokenTypography: {
		"fontFamily": "Inter, system-ui, sans-serif",
	},
	meshmcp.TokenSpacing: {
		"small":  "8px",
		"medium": "16px",
		"large":  "24px",
	},
}

// Table is the in-process fallback table. It is immutable after
// construction and safe for concurrent use.
type Table struct {
	baseURL string
	byName  map[string]string // normalized identifier -> display name
}

// NewTable creates a Table. baseURL is used to derive documentation URLs
// for minimal component records.
func NewTable(baseURL string) *Table {
	t := &Table{
		baseURL: strings.TrimRight(baseURL, "/"),
		byName:  make(map[string]string, len(components)),
	}
	for _, name := range components {
		t.byName[strings.ToLower(name)] = name
	}
	return t
}

// Version identifies the revision of the embedded data.
func (t *Table) Version() string {
	return Version
}

// Components returns the known component names in display order.
func (t *Table) Components() []string {
	out := make([]string, len(components))
	copy(out, components)
	return out
}

// Lookup returns the minimal record for a key, if the table knows it.
func (t *Table) Lookup(key meshmcp.CacheKey) (json.RawMessage, bool) {
	switch key.Namespace {
	case meshmcp.NamespaceComponentList:
		if key.Identifier != meshmcp.IdentifierAll {
			return nil, false
		}
		return mustMarshal(t.Components()), true

	case meshmcp.NamespaceComponentDetail:
		name, ok := t.byName[key.Identifier]
		if !ok {
			return nil, false
		}
		return mustMarshal(t.componentRecord(name)), true

	case meshmcp.NamespaceDesignTokens:
		if key.Identifier == meshmcp.IdentifierAll {
			return mustMarshal(tokens), true
		}
		values, ok := tokens[key.Identifier]
		if !ok {
			return nil, false
		}
		return mustMarshal(meshmcp.TokenSet{key.Identifier: values}), true
	}
	return nil, false
}

// componentRecord builds a minimal record for a known component. The record
// carries only what the table can vouch for: the canonical name and the
// documentation URL.
func (t *Table) componentRecord(name string) *meshmcp.ComponentRecord {
	return &meshmcp.ComponentRecord{
		Name:         name,
		Description:  name + " component from the Mesh Design System.",
		Props:        map[string]meshmcp.PropSpec{},
		CodeExamples: []string{},
		DocURL:       t.baseURL + "/components/" + slug(name),
	}
}

// slug converts a display name to its URL path segment.
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// mustMarshal marshals embedded data. The inputs are static, so a marshal
// failure is a programming error.
func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
