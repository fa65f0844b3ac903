package leveldata

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// WavePrefix marks object groups that hold a wave.
const WavePrefix = "wave-"

var (
	ErrNoWaves         = errors.New("level has no waves")
	ErrSpawnOutsideMap = errors.New("spawn outside the map")
)

// LoadLevelData parses a TMX file and returns its waves sorted by order. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevelData(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if !strings.HasPrefix(og.Name, WavePrefix) {
			continue
		}
		wave := WaveData{Name: og.Name}
		if og.Properties != nil {
			wave.Order = og.Properties.GetInt("order")
		}
		if wave.Order == 0 {
			// fall back to the number in the group name
			n, err := strconv.Atoi(strings.TrimPrefix(og.Name, WavePrefix))
			if err != nil {
				return nil, fmt.Errorf("%s: group %q has no order", tmxPath, og.Name)
			}
			wave.Order = n
		}

		for _, o := range og.Objects {
			var kind string
			if o.Properties != nil {
				kind = o.Properties.GetString("enemy")
			}
			if kind == "" {
				return nil, fmt.Errorf("%s: object %d in %q has no enemy property", tmxPath, o.ID, og.Name)
			}
			s := Spawn{Kind: kind, X: o.X, Y: o.Y}
			if !data.contains(s) {
				return nil, fmt.Errorf("%s: object %d in %q at (%g, %g): %w", tmxPath, o.ID, og.Name, o.X, o.Y, ErrSpawnOutsideMap)
			}
			wave.Spawns = append(wave.Spawns, s)
		}
		data.Waves = append(data.Waves, wave)
	}

	if len(data.Waves) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoWaves)
	}

	slices.SortStableFunc(data.Waves, func(a, b WaveData) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), strings.Compare(a.Name, b.Name))
	})
	return data, nil
}

// contains reports whether s lies within the map's width and above its
// bottom edge. Negative Y is the entry area above the field.
func (d *LevelData) contains(s Spawn) bool {
	return s.X >= 0 && s.X <= float64(d.MapWidth) && s.Y <= float64(d.MapHeight)
}

// Build turns parsed wave data into waves of live enemies.
func (d *LevelData) Build(create Factory) ([]combat.Wave, error) {
	waves := make([]combat.Wave, 0, len(d.Waves))
	for _, w := range d.Waves {
		wave := combat.Wave{Enemies: make([]*combat.Enemy, 0, len(w.Spawns))}
		for i, s := range w.Spawns {
			e, err := create(s.Kind, gamemath.V(s.X, s.Y))
			if err != nil {
				return nil, fmt.Errorf("%s spawn %d: %w", w.Name, i, err)
			}
			wave.Enemies = append(wave.Enemies, e)
		}
		waves = append(waves, wave)
	}
	return waves, nil
}

// Load parses a TMX file and builds its waves.
func Load(fsys fs.FS, tmxPath string, create Factory) ([]combat.Wave, error) {
	data, err := LoadLevelData(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	return data.Build(create)
}

// Default is the built-in three-wave stage used when no level file is given.
func Default(create Factory) ([]combat.Wave, error) {
	data := &LevelData{
		Name: "default",
		Waves: []WaveData{
			{Name: "wave-1", Order: 1, Spawns: []Spawn{
				{Kind: "simple", X: 100, Y: -100},
				{Kind: "sniper", X: 700, Y: -100},
			}},
			{Name: "wave-2", Order: 2, Spawns: []Spawn{
				{Kind: "tank", X: 400, Y: -100},
				{Kind: "sniper", X: 400, Y: -100},
			}},
			{Name: "wave-3", Order: 3, Spawns: []Spawn{
				{Kind: "boss", X: 400, Y: -100},
			}},
		},
	}
	return data.Build(create)
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevelData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
