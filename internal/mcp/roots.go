package mcp

import (
	"context"
	"errors"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var errServerNotAttached = errors.New("roots bridge is not attached to a server")

// RootsBridge answers workdir roots queries by asking the connected client
// through the MCP server. It is created before the server exists and
// attached once the server is built.
type RootsBridge struct {
	mu  sync.RWMutex
	srv *server.MCPServer
}

func NewRootsBridge() *RootsBridge {
	return &RootsBridge{}
}

func (b *RootsBridge) attach(srv *server.MCPServer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.srv = srv
}

func (b *RootsBridge) ListRoots(ctx context.Context) ([]string, error) {
	b.mu.RLock()
	srv := b.srv
	b.mu.RUnlock()
	if srv == nil {
		return nil, errServerNotAttached
	}

	res, err := srv.RequestRoots(ctx, mcp.ListRootsRequest{})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	uris := make([]string, 0, len(res.Roots))
	for _, root := range res.Roots {
		uris = append(uris, root.URI)
	}
	return uris, nil
}
