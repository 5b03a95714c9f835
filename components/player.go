package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	InvulnFrames int // frames after a hit during which further hits are ignored
	Bombs        int
}

var Player = donburi.NewComponentType[PlayerData]()
