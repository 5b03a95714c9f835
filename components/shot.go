package components

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShotGroupData is one fired shot type. SubShots keeps spawn order and only
// holds live sub-shots.
type ShotGroupData struct {
	TypeID   int
	List     config.CollisionListID
	Origin   math.Vec2
	SubShots []donburi.Entity
	Live     int
}

var ShotGroup = donburi.NewComponentType[ShotGroupData]()

// SubShotData is the per-projectile state. Template is resolved through the
// catalog; Group is the owning group entity.
type SubShotData struct {
	Group    donburi.Entity
	Template catalog.TemplateRef
	Index    int
	Homing   catalog.HomingMode
	Rotation float64 // radians, not wrapped
	Aim      float64 // spawn heading, radians
	Active   bool
	Health   float64
}

var SubShot = donburi.NewComponentType[SubShotData]()
