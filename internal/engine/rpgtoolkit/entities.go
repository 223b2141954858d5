// Package rpgtoolkit connects the battle engine to rpg-toolkit: players and
// creatures as core entities, and encounter outcomes as events on the bus.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types used on the event bus
const (
	EntityTypePlayer   = "player"
	EntityTypeCreature = "creature"
)

// PlayerEntity identifies a player on the event bus
type PlayerEntity struct {
	ID string
}

// GetID returns the player's ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// CreatureEntity identifies a creature by the region it guards
type CreatureEntity struct {
	RegionID string
	Name     string
}

// GetID returns the region identifier
func (c *CreatureEntity) GetID() string {
	return c.RegionID
}

// GetType returns the entity type for rpg-toolkit
func (c *CreatureEntity) GetType() string {
	return EntityTypeCreature
}

var (
	_ core.Entity = (*PlayerEntity)(nil)
	_ core.Entity = (*CreatureEntity)(nil)
)
