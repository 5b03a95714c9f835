package tags

import "github.com/yohamta/donburi"

var (
	ShotGroup = donburi.NewTag().SetName("ShotGroup")
	SubShot   = donburi.NewTag().SetName("SubShot")
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Boss      = donburi.NewTag().SetName("Boss")
	Item      = donburi.NewTag().SetName("Item")
)
