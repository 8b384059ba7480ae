package mcp

import (
	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// Locate finds the MCP server configuration under root.
func Locate(root string) locate.Source {
	return locate.First(root,
		locate.Dir("mcp-servers"),
		locate.File(locate.LegacyFile, "mcp.json"),
	)
}

// Extract lists the servers in the located configuration.
func Extract(src locate.Source, log *zap.Logger) []Server {
	switch src.Kind {
	case locate.DirectoryOfItems:
		return loadServerDirs(src.Path, log)
	case locate.LegacyFile:
		return loadMCPFile(src.Path, log)
	default:
		return nil
	}
}

// loadMCPFile reads the legacy mcp.json. Servers are listed in key order;
// the command is the "command" field, or else "args" (a string or an
// array of strings joined with spaces).
func loadMCPFile(path string, log *zap.Logger) []Server {
	data, ok := component.ReadFile(log, path)
	if !ok {
		return nil
	}
	obj, err := decode.JSONObject(data)
	if err != nil {
		component.Skipped(log, path, err)
		return nil
	}
	servers, ok := obj.Object("mcpServers")
	if !ok {
		return nil
	}

	var out []Server
	for _, name := range servers.Keys() {
		sc, ok := servers.Object(name)
		if !ok {
			component.Logger(log).Debug("mcp server entry is not an object",
				zap.String("path", path), zap.String("server", name))
			continue
		}
		s := Server{
			Name:   name,
			Status: StatusConnected,
			Path:   path,
		}
		if cmd, ok := sc.String("command"); ok {
			s.Command = &cmd
		} else if args, ok := sc.StringOrStrings("args"); ok {
			s.Command = &args
		}
		out = append(out, s)
	}
	return out
}
