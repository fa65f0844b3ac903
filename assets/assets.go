package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LoadWaves builds the waves of an embedded level. An empty path selects the
// built-in stage.
func LoadWaves(path string, create leveldata.Factory) ([]combat.Wave, error) {
	if path == "" {
		return leveldata.Default(create)
	}
	waves, err := leveldata.Load(assetFS, path, create)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return waves, nil
}

// LevelPath maps a level name such as "stage1" to its embedded path.
func LevelPath(name string) string {
	return levelsDir + "/" + name + ".tmx"
}

// LevelNames lists the embedded levels, sorted.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	return names, err
}
