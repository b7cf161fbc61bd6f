package domain

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/whiskerlabs/catbase/internal/platform/id"
)

// invocationIDMetaKey names the correlation identifier in tool result metadata.
const invocationIDMetaKey = "catbase/invocation_id"

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	InvocationID string
}

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	result := &mcp.CallToolResult{}
	if meta.InvocationID != "" {
		result.Meta = map[string]any{
			invocationIDMetaKey: meta.InvocationID,
		}
	}
	return result
}
