// Package domain translates MCP tool and resource requests into catalog
// queries.
//
// The package is intentionally explicit about that mapping:
// - declare each tool's input and output schema as typed structs,
// - route calls to the matching read-only catalog operation,
// - and surface structured outputs that MCP clients can render.
//
// Argument type and presence checking happens at the protocol boundary: the
// SDK validates payloads against the schemas inferred from the input structs
// before a handler runs, so handlers assume well-typed input.
package domain
