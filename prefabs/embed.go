package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	//go:embed *.yaml
	DocumentsFS embed.FS

	//go:embed scripts/*.tengo
	ScriptsFS embed.FS
)

// Load reads a character document. A copy under ./prefabs wins over the
// embedded one so edits are picked up without rebuilding.
func Load(name string) ([]byte, error) {
	return read(DocumentsFS, documentPath(name))
}

// LoadScript reads an input script the same way. name may carry the
// scripts/ prefix and the .tengo extension or not.
func LoadScript(name string) ([]byte, error) {
	return read(ScriptsFS, scriptPath(name))
}

func read(embedded fs.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, rel)
}

func documentPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), Dir+"/")
}

func scriptPath(name string) string {
	s := documentPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	if path.Ext(s) == "" {
		s += ".tengo"
	}
	return "scripts/" + s
}
