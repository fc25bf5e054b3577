package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// instructions is sent to clients during initialisation.
const instructions = `lotus is a personal address book and notebook.
Look contacts up with get_contact, find_contact (by phone or email) and
list_contacts; upcoming_birthdays lists who to congratulate, with weekend
birthdays moved to the following Monday. Notes are added with add_note and
found by tag with search_notes (all tags must match) or list_tags.
The same data is readable as the lotus://contacts, lotus://notes and
lotus://notes/{noteId} resources.`

// shutdownTimeout bounds how long RunHTTP waits for open requests.
const shutdownTimeout = 5 * time.Second

// Server exposes the address book and notebook to MCP clients.
//
// Tools: get_contact, find_contact, list_contacts, upcoming_birthdays,
// add_note, search_notes, list_tags. Resources: lotus://contacts,
// lotus://notes and the lotus://notes/{noteId} template.
// add_note is the only tool that changes state.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer validates ports and registers the lotus tools and resources.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "lotus",
		Title:   "lotus address book",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves one client over stdin/stdout until ctx is cancelled or the
// client disconnects. Logs must not go to stdout while it runs.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP: serving on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is
// cancelled. Every session shares the same address book.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP: HTTP shutdown: %v", err)
		}
	}()

	logger.Debug("MCP: serving HTTP on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
