package factory

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// RegisterCollider creates the resolv box around circle at pos, tags it with
// the list and adds it to the space.
func RegisterCollider(ecs *ecs.ECS, entry *donburi.Entry, list config.CollisionListID, circle catalog.Circle, pos math.Vec2, onHit components.HitFunc) {
	x, y := colliderOrigin(circle, pos)
	obj := resolv.NewObject(x, y, circle.Radius*2, circle.Radius*2, list.Tag())
	obj.Data = entry
	components.Collider.SetValue(entry, components.ColliderData{
		Object: obj,
		List:   list,
		Circle: circle,
		OnHit:  onHit,
	})
	Space(ecs).Add(obj)
}

// SyncCollider moves the collider box to follow pos.
func SyncCollider(c *components.ColliderData, pos math.Vec2) {
	if c.Object == nil {
		return
	}
	c.X, c.Y = colliderOrigin(c.Circle, pos)
	c.Update()
}

// ColliderCenter returns the world position of the collider circle.
func ColliderCenter(c *components.ColliderData, pos math.Vec2) math.Vec2 {
	return math.Vec2{X: pos.X + c.Circle.Center.X, Y: pos.Y + c.Circle.Center.Y}
}

// UnregisterCollider removes the collider box from the space.
func UnregisterCollider(ecs *ecs.ECS, entry *donburi.Entry) {
	c := components.Collider.Get(entry)
	if c.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(c.Object)
	}
	c.Object.Data = nil
	c.Object = nil
}

// colliderOrigin maps a circle at pos to the top left corner of its box in
// space coordinates. The space grid starts at the simulation bounds minimum.
func colliderOrigin(circle catalog.Circle, pos math.Vec2) (float64, float64) {
	cx := pos.X + circle.Center.X - config.Shot.BoundsMinX
	cy := pos.Y + circle.Center.Y - config.Shot.BoundsMinY
	return cx - circle.Radius, cy - circle.Radius
}
