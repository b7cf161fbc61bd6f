package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/whiskerlabs/catbase/internal/services/mcp/domain")

// startToolSpan opens a span for a tool call so per-tool latency and outcomes
// show up in traces when tracing is enabled.
func startToolSpan(ctx context.Context, tool string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "mcp.tool/"+tool,
		trace.WithAttributes(attribute.String("catbase.tool", tool)))
}

// ListAllCatsHandler returns every cat in the directory.
func ListAllCatsHandler(dir CatDirectory) mcp.ToolHandlerFor[ListAllCatsInput, ListAllCatsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListAllCatsInput) (*mcp.CallToolResult, ListAllCatsResult, error) {
		_, span := startToolSpan(ctx, "list_all_cats")
		defer span.End()

		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, ListAllCatsResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		cats := catViews(dir.All())
		span.SetAttributes(attribute.Int("catbase.result_count", len(cats)))

		result := ListAllCatsResult{Cats: cats, Count: len(cats)}
		return CallToolResultWithMetadata(ToolCallMetadata{InvocationID: invocationID}), result, nil
	}
}

// GetCatByIDHandler looks up a single cat by id. A missing id is a normal,
// non-fatal outcome surfaced as a tool error distinct from invalid arguments.
func GetCatByIDHandler(dir CatDirectory) mcp.ToolHandlerFor[GetCatByIDInput, GetCatByIDResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetCatByIDInput) (*mcp.CallToolResult, GetCatByIDResult, error) {
		_, span := startToolSpan(ctx, "get_cat_by_id")
		defer span.End()
		span.SetAttributes(attribute.Int("catbase.cat_id", input.ID))

		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, GetCatByIDResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		cat, ok := dir.ByID(input.ID)
		if !ok {
			return nil, GetCatByIDResult{}, fmt.Errorf("no cat with id %d", input.ID)
		}

		result := GetCatByIDResult{Cat: catView(cat)}
		return CallToolResultWithMetadata(ToolCallMetadata{InvocationID: invocationID}), result, nil
	}
}

// SearchByBreedHandler returns the cats whose breed contains the query.
// Zero matches is a valid, empty result.
func SearchByBreedHandler(dir CatDirectory) mcp.ToolHandlerFor[SearchByBreedInput, SearchByBreedResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchByBreedInput) (*mcp.CallToolResult, SearchByBreedResult, error) {
		_, span := startToolSpan(ctx, "search_by_breed")
		defer span.End()
		span.SetAttributes(attribute.String("catbase.breed_query", input.Breed))

		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, SearchByBreedResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		cats := catViews(dir.SearchBreed(input.Breed))
		span.SetAttributes(attribute.Int("catbase.result_count", len(cats)))

		result := SearchByBreedResult{Cats: cats, Count: len(cats)}
		return CallToolResultWithMetadata(ToolCallMetadata{InvocationID: invocationID}), result, nil
	}
}

// GetIndoorCatsHandler returns the cats flagged as indoor.
func GetIndoorCatsHandler(dir CatDirectory) mcp.ToolHandlerFor[GetIndoorCatsInput, GetIndoorCatsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetIndoorCatsInput) (*mcp.CallToolResult, GetIndoorCatsResult, error) {
		_, span := startToolSpan(ctx, "get_indoor_cats")
		defer span.End()

		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, GetIndoorCatsResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		cats := catViews(dir.Indoor())
		span.SetAttributes(attribute.Int("catbase.result_count", len(cats)))

		result := GetIndoorCatsResult{Cats: cats, Count: len(cats)}
		return CallToolResultWithMetadata(ToolCallMetadata{InvocationID: invocationID}), result, nil
	}
}
