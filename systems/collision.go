package systems

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type collisionPair struct {
	a, b donburi.Entity
}

// UpdateCollisions runs every configured list pair through the resolv broad
// phase, confirms overlaps circle against circle and calls the hit callbacks
// of both sides. Callbacks run after all pairs are found so that removals do
// not disturb the space while it is queried.
func UpdateCollisions(ecs *ecs.ECS) {
	var pairs []collisionPair

	for _, check := range cfg.Collision.Checks {
		components.Collider.Each(ecs.World, func(e *donburi.Entry) {
			collider := components.Collider.Get(e)
			if collider.List != check.A || collider.Object == nil {
				return
			}
			collision := collider.Check(0, 0, check.B.Tag())
			if collision == nil {
				return
			}
			for _, obj := range collision.ObjectsByTags(check.B.Tag()) {
				other, ok := obj.Data.(*donburi.Entry)
				if !ok || other == nil || !other.Valid() {
					continue
				}
				if circlesOverlap(e, other) {
					pairs = append(pairs, collisionPair{a: e.Entity(), b: other.Entity()})
				}
			}
		})
	}

	for _, p := range pairs {
		dispatchHit(ecs, p.a, p.b)
	}
}

// dispatchHit calls both callbacks. A sub-shot removes itself when hit, so
// the other side goes first and still sees it. Entries are looked up again
// after each callback since a removed id may already be reused.
func dispatchHit(ecs *ecs.ECS, a, b donburi.Entity) {
	w := ecs.World
	if !w.Valid(a) || !w.Valid(b) {
		return
	}
	if w.Entry(a).HasComponent(components.SubShot) {
		a, b = b, a
	}
	if onHit := components.Collider.Get(w.Entry(a)).OnHit; onHit != nil {
		onHit(ecs, w.Entry(a), w.Entry(b))
	}
	if !w.Valid(a) || !w.Valid(b) {
		return
	}
	if onHit := components.Collider.Get(w.Entry(b)).OnHit; onHit != nil {
		onHit(ecs, w.Entry(b), w.Entry(a))
	}
}

func circlesOverlap(a, b *donburi.Entry) bool {
	ca, cb := components.Collider.Get(a), components.Collider.Get(b)
	pa := factory.ColliderCenter(ca, components.Physics.Get(a).Position)
	pb := factory.ColliderCenter(cb, components.Physics.Get(b).Position)
	return gamemath.Distance(pa, pb) <= ca.Circle.Radius+cb.Circle.Radius
}
