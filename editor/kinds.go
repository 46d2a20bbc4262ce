package editor

// ObjectKind is the closed set of entity types the editor can place.
type ObjectKind int

const (
	ObjectNone ObjectKind = iota
	ObjectButterfly
	ObjectPlayer
)

var objectKindNames = map[ObjectKind]string{
	ObjectNone:      "none",
	ObjectButterfly: "butterfly",
	ObjectPlayer:    "player",
}

func (k ObjectKind) String() string {
	if name, ok := objectKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k names a placeable kind.
func (k ObjectKind) Valid() bool {
	return k == ObjectButterfly || k == ObjectPlayer
}

// ObjectKinds returns the placeable kinds in dialog order.
func ObjectKinds() []ObjectKind {
	return []ObjectKind{ObjectButterfly, ObjectPlayer}
}

// ParseObjectKind looks up a kind by the name used in level files.
func ParseObjectKind(name string) (ObjectKind, bool) {
	for k, n := range objectKindNames {
		if n == name && k.Valid() {
			return k, true
		}
	}
	return ObjectNone, false
}
