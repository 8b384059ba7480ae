// Package mcp reports configured MCP (Model Context Protocol) servers.
//
// Two layouts exist, tried in this order:
//   - mcp-servers/<name>/: one directory per installed server, described by
//     a smithery.yaml or a package.json
//   - mcp.json (legacy): {"mcpServers": {"<name>": {"command": "..", "args": [..]}}}
package mcp

import "fmt"

// Status values.
const (
	StatusInstalled = "installed"
	StatusConnected = "connected"
)

// smitheryMarker is the command reported for servers launched by Smithery.
const smitheryMarker = "smithery.yaml"

// Server is one MCP server.
type Server struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Command     *string `json:"command"`
	Path        string  `json:"path"`
	Version     *string `json:"version,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Describe returns the server's description, or its status.
func (s Server) Describe() string {
	if s.Description != nil {
		return *s.Description
	}
	return fmt.Sprintf("%s MCP server", s.Status)
}
