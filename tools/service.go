// Package tools implements the MCP tool surface: each tool maps a request
// onto the cache pipeline or onto a pure, stateless transform, and returns
// a structured payload with freshness metadata. Failures surface as
// structured error objects, never as transport-level exceptions.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/pipeline"
)

// Error kinds surfaced to callers.
const (
	KindNotFound         = "NotFound"
	KindExtractionFailed = "ExtractionFailed"
	KindInvalidInput     = "InvalidInput"
	KindInternal         = "Internal"
)

// Response is the structured result of a tool invocation. Either Data or
// Error is set, never both.
type Response struct {
	Data   any        `json:"data,omitempty"`
	Stale  bool       `json:"stale"`
	Source string     `json:"source,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the structured error surfaced to callers.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Service dispatches MCP tool invocations.
type Service struct {
	Coordinator *pipeline.Coordinator
	Generator   meshmcp.DataGenerator
	Logger      *slog.Logger
}

// Invoke executes the named tool with the given arguments.
func (s *Service) Invoke(ctx context.Context, tool string, args map[string]any) *Response {
	id := uuid.New().String()
	s.logger().Info("tool invocation", "id", id, "tool", tool)

	switch tool {
	case "listComponents":
		return s.ListComponents(ctx)

	case "getComponentDetails":
		name, ok := stringArg(args, "componentName")
		if !ok || name == "" {
			return errorResponse(KindInvalidInput, "componentName is required")
		}
		return s.GetComponentDetails(ctx, name)

	case "getDesignTokens":
		tokenType, ok := stringArg(args, "tokenType")
		if !ok {
			tokenType = meshmcp.IdentifierAll
		}
		return s.GetDesignTokens(ctx, tokenType)

	case "generatePlaceholderData":
		dataType, ok := stringArg(args, "dataType")
		if !ok || dataType == "" {
			return errorResponse(KindInvalidInput, "dataType is required")
		}
		count := intArg(args, "count", 10)
		return s.GeneratePlaceholderData(dataType, count)

	case "searchComponentsByUseCase":
		useCase, ok := stringArg(args, "useCase")
		if !ok || useCase == "" {
			return errorResponse(KindInvalidInput, "useCase is required")
		}
		return s.SearchComponentsByUseCase(useCase)

	case "generatePrototypeCode":
		description, ok := stringArg(args, "description")
		if !ok || description == "" {
			return errorResponse(KindInvalidInput, "description is required")
		}
		components := stringSliceArg(args, "components")
		includeData := boolArg(args, "includeData", true)
		return s.GeneratePrototypeCode(description, components, includeData)
	}

	return errorResponse(KindNotFound, "tool %q not found", tool)
}

// ListComponents returns the full ordered component list.
func (s *Service) ListComponents(ctx context.Context) *Response {
	key := meshmcp.NewCacheKey(meshmcp.NamespaceComponentList, meshmcp.IdentifierAll)
	var list []string
	return s.cached(ctx, key, &list)
}

// GetComponentDetails returns the structured record for one component.
func (s *Service) GetComponentDetails(ctx context.Context, name string) *Response {
	key := meshmcp.NewCacheKey(meshmcp.NamespaceComponentDetail, name)
	var record meshmcp.ComponentRecord
	return s.cached(ctx, key, &record)
}

// GetDesignTokens returns design tokens, optionally restricted to one
// category.
func (s *Service) GetDesignTokens(ctx context.Context, tokenType string) *Response {
	if tokenType == "" {
		tokenType = meshmcp.IdentifierAll
	}
	key := meshmcp.NewCacheKey(meshmcp.NamespaceDesignTokens, tokenType)
	if !meshmcp.KnownTokenCategory(key.Identifier) {
		return errorResponse(KindNotFound, "unknown token category %q", tokenType)
	}
	var tokens meshmcp.TokenSet
	return s.cached(ctx, key, &tokens)
}

// GeneratePlaceholderData returns realistic placeholder records.
func (s *Service) GeneratePlaceholderData(dataType string, count int) *Response {
	if s.Generator == nil {
		return errorResponse(KindInternal, "data generator not configured")
	}
	records, err := s.Generator.Generate(dataType, count)
	if err != nil {
		return errorFrom(err)
	}
	return &Response{Data: records}
}

// SearchComponentsByUseCase suggests components for a UI pattern.
func (s *Service) SearchComponentsByUseCase(useCase string) *Response {
	return &Response{Data: SearchByUseCase(useCase)}
}

// GeneratePrototypeCode returns React component code built from Mesh
// components.
func (s *Service) GeneratePrototypeCode(description string, components []string, includeData bool) *Response {
	return &Response{Data: GeneratePrototype(description, components, includeData)}
}

// cached resolves a key through the coordinator and unmarshals the entry
// value into out.
func (s *Service) cached(ctx context.Context, key meshmcp.CacheKey, out any) *Response {
	res, err := s.Coordinator.Get(ctx, key, false)
	if err != nil {
		return errorFrom(err)
	}

	if err := json.Unmarshal(res.Entry.Value, out); err != nil {
		return errorResponse(KindInternal, "corrupt cache entry for %s", key)
	}

	return &Response{
		Data:   out,
		Stale:  res.Stale,
		Source: string(res.Entry.Source),
	}
}

// errorFrom maps an application error onto the caller-facing taxonomy.
func errorFrom(err error) *Response {
	kind := KindInternal
	switch meshmcp.ErrorCode(err) {
	case meshmcp.EINVALID:
		kind = KindInvalidInput
	case meshmcp.ENOTFOUND:
		kind = KindNotFound
	case meshmcp.EEXTRACTION, meshmcp.EUNAVAILABLE:
		kind = KindExtractionFailed
	}
	return &Response{Error: &ErrorBody{Kind: kind, Message: meshmcp.ErrorMessage(err)}}
}

func errorResponse(kind, format string, args ...any) *Response {
	return &Response{Error: &ErrorBody{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Argument helpers. MCP arguments arrive as decoded JSON, so numbers are
// float64 and lists are []any.

func stringArg(args map[string]any, name string) (string, bool) {
	v, ok := args[name]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func boolArg(args map[string]any, name string, fallback bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return fallback
}

func stringSliceArg(args map[string]any, name string) []string {
	list, ok := args[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
