package config

import "fmt"

// CollisionListID identifies one collision list. Colliders only ever hit
// colliders of a list their own list is paired with in Collision.Checks.
type CollisionListID int

const (
	PlayerList CollisionListID = iota
	PlayerShotList
	EnemyList
	EnemyShotList
	ItemList
	PlayerItemList
)

var collisionListNames = map[CollisionListID]string{
	PlayerList:     "PlayerList",
	PlayerShotList: "PlayerShotList",
	EnemyList:      "EnemyList",
	EnemyShotList:  "EnemyShotList",
	ItemList:       "ItemList",
	PlayerItemList: "PlayerItemList",
}

// Tag returns the resolv tag used for objects registered on this list.
func (id CollisionListID) Tag() string {
	if name, ok := collisionListNames[id]; ok {
		return name
	}
	return fmt.Sprintf("CollisionList%d", int(id))
}

func (id CollisionListID) String() string {
	return id.Tag()
}
