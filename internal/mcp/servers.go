package mcp

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// loadServerDirs treats every subdirectory of dir as an installed server.
func loadServerDirs(dir string, log *zap.Logger) []Server {
	var out []Server
	for _, serverDir := range locate.Subdirs(dir) {
		s := Server{
			Name:   filepath.Base(serverDir),
			Status: StatusInstalled,
			Path:   serverDir,
		}
		readPackageJSON(&s, filepath.Join(serverDir, "package.json"), log)
		readSmithery(&s, filepath.Join(serverDir, "smithery.yaml"), log)
		out = append(out, s)
	}
	return out
}

// readPackageJSON takes the command from the package name, plus version
// and description.
func readPackageJSON(s *Server, path string, log *zap.Logger) {
	data, ok := component.ReadFile(log, path)
	if !ok {
		return
	}
	pkg, err := decode.JSONObject(data)
	if err != nil {
		component.Skipped(log, path, err)
		return
	}
	if name, ok := pkg.String("name"); ok {
		s.Command = &name
	}
	if v, ok := pkg.String("version"); ok {
		s.Version = &v
	}
	if d, ok := pkg.String("description"); ok {
		s.Description = &d
	}
}

// readSmithery marks servers that ship a smithery.yaml. Its presence alone
// sets the command; a parseable startCommand.type fills in a missing
// description.
func readSmithery(s *Server, path string, log *zap.Logger) {
	if !locate.Exists(path) {
		return
	}
	marker := smitheryMarker
	s.Command = &marker

	data, ok := component.ReadFile(log, path)
	if !ok {
		return
	}
	doc, err := decode.YAML(data)
	if err != nil {
		component.Skipped(log, path, err)
		return
	}
	if typ, ok := decode.YAMLLookup(doc, "startCommand", "type"); ok && typ != "" && s.Description == nil {
		desc := fmt.Sprintf("smithery %s server", typ)
		s.Description = &desc
	}
}
