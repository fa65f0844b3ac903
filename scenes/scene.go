package scenes

import (
	"time"

	cfg "github.com/automoto/shmup/config"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// matchSeed returns the configured seed, or one drawn from the clock when unset.
func matchSeed() uint64 {
	if cfg.Debug.Seed != 0 {
		return cfg.Debug.Seed
	}
	return uint64(time.Now().UnixNano())
}
