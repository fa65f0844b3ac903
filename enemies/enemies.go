// Package enemies builds enemies by kind name from the configured archetype
// table. It has no dependencies on ebitengine or donburi.
package enemies

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/automoto/shmup/combat"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/shared/gamemath"
)

// Enemy kind names as used by level files.
const (
	KindSimple = "simple"
	KindSniper = "sniper"
	KindTank   = "tank"
	KindBoss   = "boss"
)

var ErrUnknownKind = errors.New("unknown enemy kind")

// enemyType holds the behavior and stats every enemy of one kind points at.
type enemyType struct {
	kind     combat.Kind
	behavior *combat.BehaviorModel
	stats    *combat.StatModel
}

var (
	typesOnce sync.Once
	types     map[string]enemyType
)

func loadTypes() {
	types = make(map[string]enemyType, len(cfg.Enemy.Types))
	for name, t := range cfg.Enemy.Types {
		behavior, stats := t.Behavior, t.Stats
		types[name] = enemyType{kind: t.Kind, behavior: &behavior, stats: &stats}
	}
}

// Create builds an enemy of the named kind at pos. Enemies of the same kind
// share one BehaviorModel and one StatModel.
func Create(name string, pos gamemath.Vec) (*combat.Enemy, error) {
	typesOnce.Do(loadTypes)
	t, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return combat.NewEnemy(t.kind, pos, t.behavior, t.stats), nil
}

// Kinds returns the known kind names, sorted.
func Kinds() []string {
	typesOnce.Do(loadTypes)
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func mustCreate(name string, pos gamemath.Vec) *combat.Enemy {
	e, err := Create(name, pos)
	if err != nil {
		panic(err)
	}
	return e
}

// CreateSimple wanders and fires point-seeking shots.
func CreateSimple(pos gamemath.Vec) *combat.Enemy {
	return mustCreate(KindSimple, pos)
}

// CreateSniper keeps its distance and fires homing shots.
func CreateSniper(pos gamemath.Vec) *combat.Enemy {
	return mustCreate(KindSniper, pos)
}

// CreateTank never shoots and rams the player.
func CreateTank(pos gamemath.Vec) *combat.Enemy {
	return mustCreate(KindTank, pos)
}

func CreateBoss(pos gamemath.Vec) *combat.Enemy {
	return mustCreate(KindBoss, pos)
}
