// Package engine implements the battle rules: damage, encounter creation and
// the turn state machine. Everything here is pure; timers and persistence
// live in the encounter orchestrator.
package engine

// Role identifies who is attacking
type Role string

// Attacker roles
const (
	RolePlayer Role = "player"
	RoleEnemy  Role = "enemy"
)

// Event is an input to the turn state machine
type Event interface {
	isEvent()
}

// Answer is a player action. In fallback mode the choice is ignored.
type Answer struct {
	Choice int
}

// Counter is the delayed enemy counter-attack firing
type Counter struct{}

func (Answer) isEvent()  {}
func (Counter) isEvent() {}

// Effect is a side effect requested by a transition
type Effect interface {
	isEffect()
}

// ScheduleCounter asks the caller to deliver a Counter event after the
// counter delay
type ScheduleCounter struct{}

// Capture asks the caller to record the region in the player's Dex
type Capture struct {
	RegionID string
}

func (ScheduleCounter) isEffect() {}
func (Capture) isEffect()         {}
