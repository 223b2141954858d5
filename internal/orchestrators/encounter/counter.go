package encounter

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/celala99/cela-geo-quest/internal/engine"
	"github.com/celala99/cela-geo-quest/internal/engine/rpgtoolkit"
	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
	"github.com/celala99/cela-geo-quest/internal/repositories/encounters"
)

// scheduleCounterLocked arms the enemy counter for the player's current
// encounter. Callers hold o.mu.
func (o *orchestrator) scheduleCounterLocked(playerID string) {
	o.cancelCounterLocked(playerID)

	generation := o.generations[playerID]
	o.pending[playerID] = o.clock.AfterFunc(o.counterDelay, func() {
		o.fireCounter(playerID, generation)
	})
}

// cancelCounterLocked stops the pending counter, if any. A timer that already
// fired is caught by the generation check in fireCounter.
func (o *orchestrator) cancelCounterLocked(playerID string) {
	if timer, ok := o.pending[playerID]; ok {
		timer.Stop()
		delete(o.pending, playerID)
	}
}

// fireCounter runs on the timer goroutine. It reads the encounter as it is
// now, so a counter armed for a replaced or abandoned encounter does nothing.
func (o *orchestrator) fireCounter(playerID string, generation uint64) {
	ctx := context.Background()

	o.mu.Lock()
	if o.generations[playerID] != generation {
		o.mu.Unlock()
		slog.Debug("Dropping stale counter", "player_id", playerID)
		return
	}
	delete(o.pending, playerID)

	current, err := o.loadLocked(ctx, playerID)
	if err != nil {
		o.mu.Unlock()
		return
	}

	next, _ := engine.Resolve(*current, engine.Counter{})
	if next.Version == current.Version {
		o.mu.Unlock()
		return
	}
	if err := o.saveLocked(ctx, playerID, &next); err != nil {
		o.mu.Unlock()
		slog.Error("Failed to save counter result", "player_id", playerID, "error", err)
		return
	}
	o.mu.Unlock()

	slog.Info("Enemy countered",
		"player_id", playerID,
		"encounter_id", next.EncounterID,
		"player_hp", next.PlayerHP,
		"finished", next.Finished,
	)

	if next.Finished == entities.OutcomeLose {
		o.publish(ctx, rpgtoolkit.NewDefeatedEvent(playerID, next.RegionID, next.Enemy.Name))
	}
}

// recordCapture adds the region to the player's Dex and announces it. A
// storage failure does not undo the win.
func (o *orchestrator) recordCapture(ctx context.Context, playerID, regionID, creatureName string) {
	_, err := o.progress.Capture(ctx, &progress.CaptureInput{
		PlayerID: playerID,
		RegionID: regionID,
	})
	if err != nil {
		slog.Error("Failed to record capture",
			"player_id", playerID,
			"region_id", regionID,
			"error", err,
		)
	}

	o.publish(ctx, rpgtoolkit.NewCapturedEvent(playerID, regionID, creatureName))
}

func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if o.eventBus == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event", "type", event.Type(), "error", err)
	}
}

func (o *orchestrator) loadLocked(ctx context.Context, playerID string) (*entities.BattleState, error) {
	out, err := o.encounterRepo.Get(ctx, encounters.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no active encounter").WithMeta("player_id", playerID)
		}
		return nil, errors.Wrap(err, "failed to load encounter")
	}
	return out.State, nil
}

func (o *orchestrator) saveLocked(ctx context.Context, playerID string, state *entities.BattleState) error {
	if _, err := o.encounterRepo.Save(ctx, encounters.SaveInput{PlayerID: playerID, State: state}); err != nil {
		return errors.Wrap(err, "failed to save encounter")
	}
	return nil
}
