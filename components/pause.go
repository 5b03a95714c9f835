package components

import "github.com/yohamta/donburi"

// PauseData stores the global pause flag.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
