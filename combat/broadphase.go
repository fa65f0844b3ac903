package combat

import (
	"math"

	"github.com/automoto/shmup/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	tagFriendlyShot = "friendly-shot"
	tagEnemyShot    = "enemy-shot"
)

// cellPad widens every indexed box on each side. resolv maps a box's far
// edge to X+W-1, so boxes overlapping by less than a unit across a cell
// border would otherwise share no cell.
const cellPad = 1

// broadphase indexes the frame's active projectiles in a resolv spatial hash
// so each target only runs the exact circle test against nearby shots.
type broadphase struct {
	space   *resolv.Space
	objects []*resolv.Object
	width   float64
	height  float64
}

func newBroadphase(a Arena, cell int) *broadphase {
	if cell <= 0 {
		cell = 32
	}
	// round up so the last partial row and column still get cells
	w := int(math.Ceil(a.Width/float64(cell))) * cell
	h := int(math.Ceil(a.Height/float64(cell))) * cell
	return &broadphase{
		space:  resolv.NewSpace(w, h, cell, cell),
		width:  float64(w),
		height: float64(h),
	}
}

// rebuild clears the space and indexes every active projectile under tag.
func (b *broadphase) rebuild(tag string, pools ...[]*Projectile) {
	if len(b.objects) > 0 {
		b.space.Remove(b.objects...)
		b.objects = b.objects[:0]
	}
	for _, pool := range pools {
		for _, p := range pool {
			if !p.Active() {
				continue
			}
			obj := b.box(p.Position, p.Size, tag)
			obj.Data = p
			b.objects = append(b.objects, obj)
		}
	}
	if len(b.objects) > 0 {
		b.space.Add(b.objects...)
	}
}

// near returns the indexed projectiles sharing a cell with c's box. Callers
// still run the exact circle test.
func (b *broadphase) near(c Collider, tag string) []*Projectile {
	probe := b.box(c.Pos(), c.Radius())
	b.space.Add(probe)
	defer b.space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var found []*Projectile
	for _, obj := range check.ObjectsByTags(tag) {
		if p, ok := obj.Data.(*Projectile); ok {
			found = append(found, p)
		}
	}
	return found
}

// box is the bounding box of a circle with its edges clamped into the space,
// then padded by cellPad. Clamping is monotonic, so two boxes that overlap
// anywhere, even off the field, still share a cell along the border.
func (b *broadphase) box(center gamemath.Vec, r float64, tags ...string) *resolv.Object {
	x0 := gamemath.Clamp(center.X-r, cellPad, b.width-2*cellPad)
	x1 := gamemath.Clamp(center.X+r, cellPad, b.width-2*cellPad)
	y0 := gamemath.Clamp(center.Y-r, cellPad, b.height-2*cellPad)
	y1 := gamemath.Clamp(center.Y+r, cellPad, b.height-2*cellPad)
	return resolv.NewObject(x0-cellPad, y0-cellPad, x1-x0+2*cellPad, y1-y0+2*cellPad, tags...)
}
