package components

import (
	"math/rand"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/yohamta/donburi"
)

// RandomData is the world's random source. Every random draw of the shot
// systems goes through it so a seed reproduces a run.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

type ShotCatalogData struct {
	*catalog.Catalog
}

var ShotCatalog = donburi.NewComponentType[ShotCatalogData]()

// ShotStatsData counts allocations and releases of shot resources.
type ShotStatsData struct {
	GroupsCreated      int
	GroupsDestroyed    int
	SubShotsSpawned    int
	SubShotsDestroyed  int
	GimmickStatesAlloc int
	GimmickStatesFreed int
}

// LiveGroups returns the number of groups not yet destroyed.
func (s ShotStatsData) LiveGroups() int {
	return s.GroupsCreated - s.GroupsDestroyed
}

// LiveSubShots returns the number of sub-shots not yet destroyed.
func (s ShotStatsData) LiveSubShots() int {
	return s.SubShotsSpawned - s.SubShotsDestroyed
}

var ShotStats = donburi.NewComponentType[ShotStatsData]()
