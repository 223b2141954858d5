package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published by the encounter orchestrator
const (
	EventCreatureCaptured = "geoquest.creature.captured"
	EventPlayerDefeated   = "geoquest.player.defeated"
)

// NewCapturedEvent builds the event emitted when a player defeats a creature
func NewCapturedEvent(playerID, regionID, creatureName string) events.Event {
	return events.NewGameEvent(
		EventCreatureCaptured,
		&PlayerEntity{ID: playerID},
		&CreatureEntity{RegionID: regionID, Name: creatureName},
	)
}

// NewDefeatedEvent builds the event emitted when a creature defeats a player
func NewDefeatedEvent(playerID, regionID, creatureName string) events.Event {
	return events.NewGameEvent(
		EventPlayerDefeated,
		&CreatureEntity{RegionID: regionID, Name: creatureName},
		&PlayerEntity{ID: playerID},
	)
}

// OutcomeHandler receives encounter outcomes decoded from bus events
type OutcomeHandler func(ctx context.Context, eventType, playerID, regionID string) error

// SubscribeOutcomes registers fn for capture and defeat events and returns
// the subscription IDs
func SubscribeOutcomes(bus events.EventBus, fn OutcomeHandler) []string {
	handler := func(ctx context.Context, e events.Event) error {
		playerID, regionID := participants(e)
		return fn(ctx, e.Type(), playerID, regionID)
	}

	return []string{
		bus.SubscribeFunc(EventCreatureCaptured, 0, handler),
		bus.SubscribeFunc(EventPlayerDefeated, 0, handler),
	}
}

func participants(e events.Event) (playerID, regionID string) {
	for _, entity := range []interface{ GetID() string }{e.Source(), e.Target()} {
		switch v := entity.(type) {
		case *PlayerEntity:
			playerID = v.ID
		case *CreatureEntity:
			regionID = v.RegionID
		}
	}
	return playerID, regionID
}
