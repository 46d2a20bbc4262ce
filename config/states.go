package config

// StateID names an animation sheet of a sprite key.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Flap
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Flap:
		return "flap"
	default:
		return "none"
	}
}
