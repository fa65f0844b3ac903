package headless

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/automoto/shmup"

var guiModules = []string{
	"github.com/hajimehoshi/ebiten",
	"github.com/yohamta/donburi",
	"github.com/ebitenui/ebitenui",
}

// moduleImports walks the in-module import graph from pkg and records every
// import it reaches in seen, mapped to the package that imports it.
func moduleImports(t *testing.T, root, pkg string, seen map[string]string) {
	fset := token.NewFileSet()
	files, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pkg), "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "package %s has no files", pkg)
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			require.NoError(t, err)
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = pkg
			if rel, ok := strings.CutPrefix(path, modulePath+"/"); ok {
				moduleImports(t, root, rel, seen)
			}
		}
	}
}

func TestHeadlessRunnerBuildsWithoutGUI(t *testing.T) {
	for _, pkg := range []string{"headless", "cmd/simulate", "match", "enemies", "autopilot", "config"} {
		t.Run(pkg, func(t *testing.T) {
			seen := map[string]string{}
			moduleImports(t, "..", pkg, seen)
			for path, from := range seen {
				for _, gui := range guiModules {
					assert.False(t, strings.HasPrefix(path, gui), "%s imports %s", from, path)
				}
			}
		})
	}
}
