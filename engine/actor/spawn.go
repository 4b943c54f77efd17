package actor

type SpawnCollisionHandling int

const (
	AlwaysSpawn SpawnCollisionHandling = iota
	AdjustIfPossibleButAlwaysSpawn
	AdjustIfPossibleButDontSpawnIfColliding
	DontSpawnIfColliding
)

func (h SpawnCollisionHandling) String() string {
	switch h {
	case AlwaysSpawn:
		return "AlwaysSpawn"
	case AdjustIfPossibleButAlwaysSpawn:
		return "AdjustIfPossibleButAlwaysSpawn"
	case AdjustIfPossibleButDontSpawnIfColliding:
		return "AdjustIfPossibleButDontSpawnIfColliding"
	case DontSpawnIfColliding:
		return "DontSpawnIfColliding"
	}
	return "Unknown"
}

type SpawnParams struct {
	Name              string
	Owner             Actor
	CollisionHandling SpawnCollisionHandling
	// Prepare runs after construction and before placement and BeginPlay.
	Prepare func(Actor)
}
