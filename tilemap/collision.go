package tilemap

import "github.com/yohamta/donburi/features/math"

// NoCollisionSet lists, per tile set, the tile indices that do not block
// movement. Tiles of a registered set block unless listed; tile sets that
// were never registered do not block at all.
type NoCollisionSet struct {
	sets map[string]map[int]struct{}
}

func NewNoCollisionSet() *NoCollisionSet {
	return &NoCollisionSet{sets: make(map[string]map[int]struct{})}
}

// Register marks tileSet as collidable and adds indices to its open tiles.
// Registering a set with no indices makes every tile of it block.
func (n *NoCollisionSet) Register(tileSet string, indices ...int) {
	set, ok := n.sets[tileSet]
	if !ok {
		set = make(map[int]struct{}, len(indices))
		n.sets[tileSet] = set
	}
	for _, i := range indices {
		set[i] = struct{}{}
	}
}

// Blocks reports whether t prevents movement into it.
func (n *NoCollisionSet) Blocks(t Tile) bool {
	set, ok := n.sets[t.TileSet]
	if !ok {
		return false
	}
	_, open := set[t.Index]
	return !open
}

// ResolveMove applies axis-separated sliding against blocked. Y is the
// ground-plane depth axis. The candidates are tried in a fixed order: the full move,
// then x only, then y only, and finally a full revert to prev.
func ResolveMove(blocked func(math.Vec2) bool, prev, next math.Vec2) math.Vec2 {
	if !blocked(next) {
		return next
	}

	xOnly := math.Vec2{X: next.X, Y: prev.Y}
	if !blocked(xOnly) {
		return xOnly
	}

	yOnly := math.Vec2{X: prev.X, Y: next.Y}
	if !blocked(yOnly) {
		return yOnly
	}

	return prev
}
