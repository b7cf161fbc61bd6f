package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// httpShutdownTimeout bounds graceful HTTP shutdown on context cancellation.
const httpShutdownTimeout = 5 * time.Second

// runWithHTTPTransport creates a server and serves it over streamable HTTP.
// Sessions share the one server instance; the catalog is read-only so no
// per-session state is needed.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	// Default to localhost-only binding; the server carries no auth.
	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = "localhost:8081"
	}

	server, err := New()
	if err != nil {
		return err
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server.mcpServer
	}, nil)

	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: handler,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()
	log.Printf("MCP HTTP transport listening on %s", httpAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP transport: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP transport: %w", err)
		}
		return nil
	}
}
