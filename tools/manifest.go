package tools

// Tool describes one entry in the MCP tool manifest.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	InputSchema *Schema `json:"inputSchema"`
}

// Schema is a JSON Schema fragment describing tool input.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property is one named field in a Schema.
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Default     any       `json:"default,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Minimum     *int      `json:"minimum,omitempty"`
	Maximum     *int      `json:"maximum,omitempty"`
}

func intPtr(n int) *int { return &n }

// Manifest returns the tool definitions advertised to MCP clients.
func Manifest() []Tool {
	return []Tool{
		{
			Name:        "listComponents",
			Description: "Get a complete list of all available components in the Mesh Design System",
			InputSchema: &Schema{Type: "object", Properties: map[string]Property{}},
		},
		{
			Name:        "getComponentDetails",
			Description: "Get detailed information about a specific Mesh component including props, usage examples, and design guidance",
			InputSchema: &Schema{
				Type: "object",
				Properties: map[string]Property{
					"componentName": {
						Type:        "string",
						Description: "Name of the component to get details for (e.g. 'Button', 'Text field')",
					},
				},
				Required: []string{"componentName"},
			},
		},
		{
			Name:        "getDesignTokens",
			Description: "Get design system tokens including colors, typography, and spacing values",
			InputSchema: &Schema{
				Type: "object",
				Properties: map[string]Property{
					"tokenType": {
						Type:        "string",
						Description: "Category of tokens to return",
						Enum:        []string{"all", "colors", "typography", "spacing"},
						Default:     "all",
					},
				},
			},
		},
		{
			Name:        "generatePlaceholderData",
			Description: "Generate realistic Australian health insurance placeholder data for prototypes",
			InputSchema: &Schema{
				Type: "object",
				Properties: map[string]Property{
					"dataType": {
						Type:        "string",
						Description: "Type of placeholder records to generate",
						Enum:        []string{"members", "policies", "claims", "providers"},
					},
					"count": {
						Type:        "integer",
						Description: "Number of records to generate",
						Default:     10,
						Minimum:     intPtr(1),
						Maximum:     intPtr(100),
					},
				},
				Required: []string{"dataType"},
			},
		},
		{
			Name:        "searchComponentsByUseCase",
			Description: "Find Mesh components suited to a UI pattern or use case (e.g. 'form', 'data display', 'navigation')",
			InputSchema: &Schema{
				Type: "object",
				Properties: map[string]Property{
					"useCase": {
						Type:        "string",
						Description: "The UI pattern or use case to find components for",
					},
				},
				Required: []string{"useCase"},
			},
		},
		{
			Name:        "generatePrototypeCode",
			Description: "Generate React prototype code that composes Mesh components",
			InputSchema: &Schema{
				Type: "object",
				Properties: map[string]Property{
					"description": {
						Type:        "string",
						Description: "What the prototype should do",
					},
					"components": {
						Type:        "array",
						Description: "Mesh components to include",
						Items:       &Property{Type: "string"},
					},
					"includeData": {
						Type:        "boolean",
						Description: "Whether to wire in generated placeholder data",
						Default:     true,
					},
				},
				Required: []string{"description"},
			},
		},
	}
}
