package goquery_test

import (
	"context"
	"encoding/json"
	"testing"

	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/goquery"
	"github.com/lukeylias/MeshMCP/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const componentsIndexHTML = `<html><body>
<nav>
	<a href="/components/accordion">Accordion</a>
	<a href="/components/button">Button</a>
	<a href="/components/button">Button</a>
	<a href="/components/date-picker">Date Picker</a>
	<a href="/about">About</a>
</nav>
</body></html>`

const buttonDetailHTML = `<html><head><title>Button - Mesh</title></head><body>
<h1>Button</h1>
<p>Buttons trigger actions and submit forms.</p>
<table>
	<tr><th>Name</th><th>Type</th><th>Description</th><th>Default</th></tr>
	<tr><td>variant</td><td>string</td><td>Visual style</td><td>primary</td></tr>
	<tr><td>disabled</td><td>boolean</td><td>Disables interaction</td><td>false</td></tr>
</table>
<pre>import { Button } from '@nib/mesh-ds-react';
&lt;Button variant="primary"&gt;Save&lt;/Button&gt;</pre>
<div class="guidance"><h2>Usage</h2><p>Use one primary button per screen.</p></div>
</body></html>`

const tokensHTML = `<html><body>
<div class="color-swatch" style="background-color: #0066CC">primary</div>
<div class="color-swatch" style="background-color: #28A745">success</div>
<div class="typography-sample">font-family: Inter, sans-serif;</div>
<div class="spacing-scale">8px 16px 24px</div>
</body></html>`

func fixtureFetcher(t *testing.T, pages map[string]string) *mock.Fetcher {
	t.Helper()
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				t.Fatalf("unexpected fetch: %s", url)
			}
			return html, nil
		},
	}
}

func passthroughConverter() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return "## Usage\n\nUse one primary button per screen.", nil
		},
	}
}

func TestScraper_ComponentList(t *testing.T) {
	t.Parallel()

	t.Run("extracts deduplicated names in source order", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components": componentsIndexHTML,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test/", goquery.WithRateLimit(1000))

		list, err := scraper.ComponentList(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Accordion", "Button", "Date Picker"}, list)
	})

	t.Run("empty page is an extraction failure", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components": "<html><body><p>loading...</p></body></html>",
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		_, err := scraper.ComponentList(context.Background())
		require.Error(t, err)
		assert.Equal(t, meshmcp.EEXTRACTION, meshmcp.ErrorCode(err))
	})
}

func TestScraper_ComponentDetail(t *testing.T) {
	t.Parallel()

	t.Run("extracts full record from detail page", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components/button": buttonDetailHTML,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		record, err := scraper.ComponentDetail(context.Background(), "button")
		require.NoError(t, err)

		assert.Equal(t, "Button", record.Name)
		assert.Equal(t, "Buttons trigger actions and submit forms.", record.Description)
		assert.Equal(t, "https://mesh.test/components/button", record.DocURL)

		require.Contains(t, record.Props, "variant")
		assert.Equal(t, meshmcp.PropSpec{
			Type:        "string",
			Description: "Visual style",
			Default:     "primary",
		}, record.Props["variant"])
		require.Contains(t, record.Props, "disabled")

		require.NotEmpty(t, record.CodeExamples)
		assert.Contains(t, record.CodeExamples[0], "@nib/mesh-ds-react")

		assert.Contains(t, record.DesignGuidance, "one primary button")
	})

	t.Run("multi-word names map to hyphenated slugs", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components/date-picker": `<html><head><title>Date Picker</title></head><body>
				<h1>Date Picker</h1><p>Select a date.</p></body></html>`,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		record, err := scraper.ComponentDetail(context.Background(), "Date Picker")
		require.NoError(t, err)
		assert.Equal(t, "Date Picker", record.Name)
	})

	t.Run("SPA error page is not-found", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components/ghost": `<html><head><title>404 | Mesh</title></head><body>
				<h1>Page not found</h1><p>Sorry.</p></body></html>`,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		_, err := scraper.ComponentDetail(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})

	t.Run("upstream 404 passes through as not-found", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", meshmcp.Errorf(meshmcp.ENOTFOUND, "HTTP 404 for %s", url)
			},
		}
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		_, err := scraper.ComponentDetail(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})

	t.Run("empty record is an extraction failure", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components/button": `<html><head><title>Button</title></head><body><h1>Button</h1></body></html>`,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		_, err := scraper.ComponentDetail(context.Background(), "button")
		require.Error(t, err)
		assert.Equal(t, meshmcp.EEXTRACTION, meshmcp.ErrorCode(err))
	})
}

func TestScraper_DesignTokens(t *testing.T) {
	t.Parallel()

	t.Run("extracts all categories", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/design-tokens/tokens-reference": tokensHTML,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		tokens, err := scraper.DesignTokens(context.Background(), meshmcp.IdentifierAll)
		require.NoError(t, err)

		assert.Equal(t, "#0066CC", tokens[meshmcp.TokenColors]["primary"])
		assert.Equal(t, "#28A745", tokens[meshmcp.TokenColors]["success"])
		assert.Equal(t, "Inter, sans-serif", tokens[meshmcp.TokenTypography]["fontFamily"])
		assert.Equal(t, map[string]string{
			"small":  "8px",
			"medium": "16px",
			"large":  "24px",
		}, tokens[meshmcp.TokenSpacing])
	})

	t.Run("single category returns only that category", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/design-tokens/tokens-reference": tokensHTML,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		tokens, err := scraper.DesignTokens(context.Background(), meshmcp.TokenColors)
		require.NoError(t, err)
		assert.Len(t, tokens, 1)
		assert.NotEmpty(t, tokens[meshmcp.TokenColors])
	})

	t.Run("unknown category is not-found without fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				t.Fatal("no fetch expected for an unknown category")
				return "", nil
			},
		}
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		_, err := scraper.DesignTokens(context.Background(), "shadows")
		require.Error(t, err)
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})

	t.Run("page with no tokens is an extraction failure", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/design-tokens/tokens-reference": "<html><body><p>loading...</p></body></html>",
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		_, err := scraper.DesignTokens(context.Background(), meshmcp.IdentifierAll)
		require.Error(t, err)
		assert.Equal(t, meshmcp.EEXTRACTION, meshmcp.ErrorCode(err))
	})
}

func TestScraper_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns JSON for the key's namespace", func(t *testing.T) {
		t.Parallel()

		fetcher := fixtureFetcher(t, map[string]string{
			"https://mesh.test/components": componentsIndexHTML,
		})
		scraper := goquery.NewScraper(fetcher, passthroughConverter(), "https://mesh.test", goquery.WithRateLimit(1000))

		raw, err := scraper.Fetch(context.Background(), meshmcp.NewCacheKey(meshmcp.NamespaceComponentList, meshmcp.IdentifierAll))
		require.NoError(t, err)

		var list []string
		require.NoError(t, json.Unmarshal(raw, &list))
		assert.Len(t, list, 3)
	})

	t.Run("rejects invalid keys", func(t *testing.T) {
		t.Parallel()

		scraper := goquery.NewScraper(&mock.Fetcher{}, passthroughConverter(), "https://mesh.test")

		_, err := scraper.Fetch(context.Background(), meshmcp.NewCacheKey("bogus", "x"))
		require.Error(t, err)
		assert.Equal(t, meshmcp.EINVALID, meshmcp.ErrorCode(err))
	})
}
