// Package service hosts the Catbase MCP server and its transports.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/whiskerlabs/catbase/internal/platform/branding"
	"github.com/whiskerlabs/catbase/internal/services/mcp/catalog"
)

// serverVersion identifies the MCP server version.
const serverVersion = "1.0.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// serverInstructions tells clients what the server is for.
const serverInstructions = "A cat database MCP server that provides tools to query cat data. " +
	"Use the available tools to list all cats, get specific cat information by ID, " +
	"search by breed, or filter for indoor cats only."

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.
}

// Server hosts the MCP server over the cat catalog.
type Server struct {
	mcpServer *mcp.Server
	directory *catalog.Catalog
}

// New creates a configured MCP server backed by the compiled-in catalog.
func New() (*Server, error) {
	return newServer(catalog.New())
}

// newServer binds tool and resource handlers to the given catalog once.
func newServer(cats *catalog.Catalog) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		Instructions:      serverInstructions,
		CompletionHandler: completionHandler,
	})

	server := &Server{mcpServer: mcpServer, directory: cats}

	for _, module := range newRegistrationModules(server.directory) {
		if err := module.register(serverRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return server, nil
}

// completionHandler handles completion/complete requests with empty results.
// The four tool schemas are closed sets, so there is nothing useful to
// complete; an empty result keeps clients that probe the capability working.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
// It is intentionally transport-agnostic so startup can choose stdio for local
// tools and HTTP for remote integrations.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal stop signal and is not reported as an
// error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, transport mcp.Transport) error {
	server, err := New()
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}
