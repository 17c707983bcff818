package meshmcp

import (
	"context"
	"encoding/json"
	"strings"
)

// PropSpec describes a single component prop.
type PropSpec struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default,omitempty"`
}

// ComponentRecord is the structured documentation for one design system
// component.
type ComponentRecord struct {
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Props          map[string]PropSpec `json:"props"`
	CodeExamples   []string            `json:"codeExamples"`
	DocURL         string              `json:"docUrl"`
	DesignGuidance string              `json:"designGuidance"`
}

// Validate returns an error if the record does not satisfy the invariants
// for the requested identifier. A record with missing-but-expected fields is
// a failure, not a degraded success: caching an incomplete record would
// poison the cache for the full TTL window.
func (r *ComponentRecord) Validate(requested string) error {
	if r.Name == "" {
		return Errorf(EEXTRACTION, "component record has no name")
	}
	if !strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(requested)) {
		return Errorf(EEXTRACTION, "component record name %q does not match requested %q", r.Name, requested)
	}
	if r.Description == "" && len(r.Props) == 0 && len(r.CodeExamples) == 0 {
		return Errorf(EEXTRACTION, "component record for %q is empty", r.Name)
	}
	return nil
}

// Extractor performs the network and rendering work needed to obtain the
// structured content for a cache key from the upstream source. It is
// stateless per invocation and fails explicitly rather than silently
// returning partial data. There is no retry loop inside the Extractor;
// retries happen naturally on the next cache-miss cycle.
type Extractor interface {
	// Fetch returns the JSON-encoded value for a key.
	// Returns ENOTFOUND if the upstream source has no such component or
	// token category (terminal), and EEXTRACTION if the fetch or parse
	// itself broke (transient-suspect).
	Fetch(ctx context.Context, key CacheKey) (json.RawMessage, error)

	// Close releases any network or browser resources.
	Close() error
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and returns
	// the rendered HTML. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
