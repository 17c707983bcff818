// Package goquery provides the Extractor implementation that parses
// rendered Mesh Design System documentation pages into structured records.
package goquery

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	meshmcp "github.com/lukeylias/MeshMCP"
	"golang.org/x/time/rate"
)

// Ensure Scraper implements meshmcp.Extractor at compile time.
var _ meshmcp.Extractor = (*Scraper)(nil)

// Scraper extracts structured design system content from rendered HTML.
// It is stateless per invocation; the fetcher and rate limiter are the only
// shared handles.
type Scraper struct {
	fetcher   meshmcp.Fetcher
	converter meshmcp.Converter
	baseURL   string
	limiter   *rate.Limiter
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithRateLimit caps upstream fetches at n requests per second.
// Defaults to 1 request per second.
func WithRateLimit(n float64) Option {
	return func(s *Scraper) {
		s.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// NewScraper creates a Scraper for the documentation site at baseURL.
// The converter renders design guidance sections as Markdown.
func NewScraper(fetcher meshmcp.Fetcher, converter meshmcp.Converter, baseURL string, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:   fetcher,
		converter: converter,
		baseURL:   strings.TrimRight(baseURL, "/"),
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the JSON-encoded value for a cache key.
func (s *Scraper) Fetch(ctx context.Context, key meshmcp.CacheKey) (json.RawMessage, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	switch key.Namespace {
	case meshmcp.NamespaceComponentList:
		list, err := s.ComponentList(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(list)

	case meshmcp.NamespaceComponentDetail:
		record, err := s.ComponentDetail(ctx, key.Identifier)
		if err != nil {
			return nil, err
		}
		return json.Marshal(record)

	case meshmcp.NamespaceDesignTokens:
		tokens, err := s.DesignTokens(ctx, key.Identifier)
		if err != nil {
			return nil, err
		}
		return json.Marshal(tokens)
	}

	return nil, meshmcp.Errorf(meshmcp.EINVALID, "unknown cache namespace %q", key.Namespace)
}

// Close releases the underlying fetcher.
func (s *Scraper) Close() error {
	return s.fetcher.Close()
}

// ComponentList returns the full ordered list of component identifiers from
// the components index page. Source order is preserved.
func (s *Scraper) ComponentList(ctx context.Context) ([]string, error) {
	doc, err := s.fetchDocument(ctx, s.baseURL+"/components")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var components []string
	doc.Find(`a[href*="/components/"]`).Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		components = append(components, name)
	})

	// An empty list means the page structure changed, not that the design
	// system has no components. Caching it would poison the list for the
	// full TTL window.
	if len(components) == 0 {
		return nil, meshmcp.Errorf(meshmcp.EEXTRACTION, "no components found on index page")
	}

	return components, nil
}

// ComponentDetail returns the structured record for one component.
func (s *Scraper) ComponentDetail(ctx context.Context, name string) (*meshmcp.ComponentRecord, error) {
	url := s.baseURL + "/components/" + slug(name)

	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		if meshmcp.ErrorCode(err) == meshmcp.ENOTFOUND {
			return nil, meshmcp.Errorf(meshmcp.ENOTFOUND, "component %q not found upstream", name)
		}
		return nil, err
	}

	// Rendered SPAs answer 200 for unknown paths and show an error page.
	if isNotFoundPage(doc) {
		return nil, meshmcp.Errorf(meshmcp.ENOTFOUND, "component %q not found upstream", name)
	}

	record := &meshmcp.ComponentRecord{
		Name:         componentName(doc, name),
		Description:  description(doc),
		Props:        map[string]meshmcp.PropSpec{},
		CodeExamples: []string{},
		DocURL:       url,
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !isPropTable(table) {
			return
		}
		for propName, spec := range propsFromTable(table) {
			record.Props[propName] = spec
		}
	})

	doc.Find("pre, code").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 10 && strings.Contains(strings.ToLower(text), strings.ToLower(record.Name)) {
			record.CodeExamples = append(record.CodeExamples, text)
		}
	})

	if guidanceHTML := guidance(doc); guidanceHTML != "" && s.converter != nil {
		if md, err := s.converter.Convert(guidanceHTML); err == nil {
			record.DesignGuidance = strings.TrimSpace(md)
		}
	}

	if err := record.Validate(name); err != nil {
		return nil, err
	}

	return record, nil
}

// DesignTokens returns the token set for one category, or the full set for
// meshmcp.IdentifierAll.
func (s *Scraper) DesignTokens(ctx context.Context, category string) (meshmcp.TokenSet, error) {
	if !meshmcp.KnownTokenCategory(category) {
		return nil, meshmcp.Errorf(meshmcp.ENOTFOUND, "unknown token category %q", category)
	}

	doc, err := s.fetchDocument(ctx, s.baseURL+"/design-tokens/tokens-reference")
	if err != nil {
		return nil, err
	}

	all := meshmcp.TokenSet{
		meshmcp.TokenColors:     colorTokens(doc),
		meshmcp.TokenTypography: typographyTokens(doc),
		meshmcp.TokenSpacing:    spacingTokens(doc),
	}

	if category != meshmcp.IdentifierAll {
		values := all[category]
		if len(values) == 0 {
			return nil, meshmcp.Errorf(meshmcp.EEXTRACTION, "no %s tokens found on reference page", category)
		}
		return meshmcp.TokenSet{category: values}, nil
	}

	empty := true
	for _, values := range all {
		if len(values) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return nil, meshmcp.Errorf(meshmcp.EEXTRACTION, "no tokens found on reference page")
	}

	return all, nil
}

// fetchDocument fetches a URL (rate limited) and parses the rendered HTML.
func (s *Scraper) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		if meshmcp.ErrorCode(err) == meshmcp.ENOTFOUND {
			return nil, err
		}
		return nil, meshmcp.Errorf(meshmcp.EEXTRACTION, "fetch %s: %v", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, meshmcp.Errorf(meshmcp.EEXTRACTION, "parse %s: %v", url, err)
	}

	return doc, nil
}

// slug converts a display name to its URL path segment.
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// isNotFoundPage detects SPA-style error pages that answer HTTP 200.
func isNotFoundPage(doc *goquery.Document) bool {
	title := strings.ToLower(doc.Find("title").Text())
	return strings.Contains(title, "404") || strings.Contains(title, "not found")
}

// componentName prefers the page heading when it matches the requested
// identifier, falling back to the requested name otherwise.
func componentName(doc *goquery.Document, requested string) string {
	heading := strings.TrimSpace(doc.Find("h1").First().Text())
	if strings.EqualFold(heading, strings.TrimSpace(requested)) {
		return heading
	}
	return strings.TrimSpace(requested)
}

// descriptionSelectors are tried in order; the first non-empty match wins.
var descriptionSelectors = []string{
	"h1 + p",
	".description",
	`[class*="description"]`,
	"main p",
	"p",
}

func description(doc *goquery.Document) string {
	for _, selector := range descriptionSelectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// guidanceSelectors locate design guidance sections.
var guidanceSelectors = []string{
	".guidance",
	".guidelines",
	`[class*="guidance"]`,
	`[class*="guideline"]`,
}

func guidance(doc *goquery.Document) string {
	for _, selector := range guidanceSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if html, err := goquery.OuterHtml(sel); err == nil && strings.TrimSpace(html) != "" {
			return html
		}
	}
	return ""
}

// isPropTable reports whether a table documents component props, judged by
// its header row.
func isPropTable(table *goquery.Selection) bool {
	found := false
	table.Find("th").Each(func(_ int, th *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(th.Text())) {
		case "prop", "property", "name":
			found = true
		}
	})
	return found
}

// propsFromTable extracts prop specs from a documentation table by mapping
// its header columns.
func propsFromTable(table *goquery.Selection) map[string]meshmcp.PropSpec {
	props := make(map[string]meshmcp.PropSpec)

	nameIdx, typeIdx, descIdx, defaultIdx := -1, -1, -1, -1
	table.Find("tr").First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(cell.Text())) {
		case "name", "prop", "property":
			nameIdx = i
		case "type", "data type":
			typeIdx = i
		case "description", "desc":
			descIdx = i
		case "default", "default value":
			defaultIdx = i
		}
	})
	if nameIdx < 0 {
		return props
	}

	table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		name := strings.TrimSpace(cells.Eq(nameIdx).Text())
		if name == "" {
			return
		}

		var spec meshmcp.PropSpec
		if typeIdx >= 0 && typeIdx < cells.Length() {
			spec.Type = strings.TrimSpace(cells.Eq(typeIdx).Text())
		}
		if descIdx >= 0 && descIdx < cells.Length() {
			spec.Description = strings.TrimSpace(cells.Eq(descIdx).Text())
		}
		if defaultIdx >= 0 && defaultIdx < cells.Length() {
			spec.Default = strings.TrimSpace(cells.Eq(defaultIdx).Text())
		}
		props[name] = spec
	})

	return props
}

var (
	hexColorRe     = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)
	classColorRe   = regexp.MustCompile(`(?i)color|swatch`)
	classTypoRe    = regexp.MustCompile(`(?i)typography|font`)
	classSpacingRe = regexp.MustCompile(`(?i)spacing|margin|padding`)
	sizeRe         = regexp.MustCompile(`\d+(?:px|rem|em)`)
)

// colorTokens extracts color swatches: an element whose class mentions
// color/swatch, with a hex value in its inline style.
func colorTokens(doc *goquery.Document) map[string]string {
	colors := make(map[string]string)
	doc.Find("div, span").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !classColorRe.MatchString(class) {
			return
		}
		name := strings.TrimSpace(sel.Text())
		style, _ := sel.Attr("style")
		if hex := hexColorRe.FindString(style); hex != "" && name != "" {
			colors[name] = hex
		}
	})
	return colors
}

func typographyTokens(doc *goquery.Document) map[string]string {
	typography := make(map[string]string)
	doc.Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !classTypoRe.MatchString(class) {
			return
		}
		text := sel.Text()
		if idx := strings.Index(strings.ToLower(text), "font-family:"); idx >= 0 {
			value := text[idx+len("font-family:"):]
			if end := strings.IndexAny(value, ";\n"); end >= 0 {
				value = value[:end]
			}
			if value = strings.TrimSpace(value); value != "" {
				typography["fontFamily"] = value
			}
		}
	})
	return typography
}

// spacingTokens reads the first three sizes from spacing sections, mapped
// to the small/medium/large scale the docs use.
func spacingTokens(doc *goquery.Document) map[string]string {
	names := []string{"small", "medium", "large"}
	spacing := make(map[string]string)
	doc.Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !classSpacingRe.MatchString(class) || len(spacing) > 0 {
			return
		}
		for i, size := range sizeRe.FindAllString(sel.Text(), 3) {
			spacing[names[i]] = size
		}
	})
	return spacing
}
