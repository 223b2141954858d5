// Package encounter implements the encounter orchestrator: it runs the battle
// engine for each player, schedules the delayed enemy counter and records
// captures when a creature is defeated.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/celala99/cela-geo-quest/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/celala99/cela-geo-quest/internal/engine"
	"github.com/celala99/cela-geo-quest/internal/engine/rpgtoolkit"
	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
	"github.com/celala99/cela-geo-quest/internal/pkg/clock"
	"github.com/celala99/cela-geo-quest/internal/pkg/idgen"
	"github.com/celala99/cela-geo-quest/internal/repositories/encounters"
)

// DefaultCounterDelay is how long the enemy waits before striking back after
// a correct answer
const DefaultCounterDelay = 550 * time.Millisecond

// Service defines the interface for encounter operations
type Service interface {
	// StartEncounter begins a battle against the region's creature,
	// replacing any encounter the player already had
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// SubmitAnswer applies a player action to the active encounter
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// GetEncounter returns the current state of the active encounter
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)

	// AbandonEncounter drops the active encounter and any pending counter
	AbandonEncounter(ctx context.Context, input *AbandonEncounterInput) (*AbandonEncounterOutput, error)

	// ListRegions returns every region a player can battle in
	ListRegions(ctx context.Context, input *ListRegionsInput) (*ListRegionsOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Dataset       *entities.Dataset
	EncounterRepo encounters.Repository
	Progress      progress.Service
	Clock         clock.Clock
	IDGenerator   idgen.Generator

	// EventBus receives capture and defeat events. Optional.
	EventBus events.EventBus

	// CounterDelay defaults to DefaultCounterDelay when zero
	CounterDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dataset == nil {
		vb.RequiredField("Dataset")
	}
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.Progress == nil {
		vb.RequiredField("Progress")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.CounterDelay < 0 {
		vb.Field("CounterDelay", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	dataset       *entities.Dataset
	encounterRepo encounters.Repository
	progress      progress.Service
	clock         clock.Clock
	idGen         idgen.Generator
	eventBus      events.EventBus
	counterDelay  time.Duration

	// mu serializes every state transition; counters fire on timer goroutines
	mu sync.Mutex
	// generations changes whenever a player's encounter is replaced or
	// abandoned so late counters can tell they are stale
	generations map[string]uint64
	pending     map[string]clock.Timer
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	delay := cfg.CounterDelay
	if delay == 0 {
		delay = DefaultCounterDelay
	}

	return &orchestrator{
		dataset:       cfg.Dataset,
		encounterRepo: cfg.EncounterRepo,
		progress:      cfg.Progress,
		clock:         cfg.Clock,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
		counterDelay:  delay,
		generations:   make(map[string]uint64),
		pending:       make(map[string]clock.Timer),
	}, nil
}

// StartEncounter begins a battle against the region's creature
func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("RegionID", input.RegionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	creature, ok := o.dataset.Creature(input.RegionID)
	if !ok {
		return nil, errors.NotFound("region not found").WithMeta("region_id", input.RegionID)
	}

	state := engine.Start(input.RegionID, creature)
	state.EncounterID = o.idGen.Generate()

	o.mu.Lock()
	defer o.mu.Unlock()

	o.cancelCounterLocked(input.PlayerID)
	o.generations[input.PlayerID]++

	saved, err := o.encounterRepo.Save(ctx, encounters.SaveInput{PlayerID: input.PlayerID, State: state})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save encounter")
	}

	slog.Info("Encounter started",
		"player_id", input.PlayerID,
		"region_id", input.RegionID,
		"encounter_id", state.EncounterID,
		"enemy_hp", state.EnemyMaxHP,
		"fallback_mode", state.FallbackMode(),
		"replaced", saved.Replaced,
	)

	return &StartEncounterOutput{State: state}, nil
}

// SubmitAnswer applies a player action to the active encounter
func (o *orchestrator) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()

	current, err := o.loadLocked(ctx, input.PlayerID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}

	if current.IsFinished() {
		o.mu.Unlock()
		return &SubmitAnswerOutput{State: current}, nil
	}
	if current.Answered {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition("waiting for the enemy to strike back").
			WithMeta("encounter_id", current.EncounterID)
	}
	if !current.FallbackMode() && (input.Choice < 0 || input.Choice >= entities.ChoiceCount) {
		o.mu.Unlock()
		return nil, errors.InvalidArgumentf("choice must be between 0 and %d", entities.ChoiceCount-1)
	}

	next, effects := engine.Resolve(*current, engine.Answer{Choice: input.Choice})
	if err := o.saveLocked(ctx, input.PlayerID, &next); err != nil {
		o.mu.Unlock()
		return nil, err
	}

	var captures []engine.Capture
	for _, effect := range effects {
		switch e := effect.(type) {
		case engine.ScheduleCounter:
			o.scheduleCounterLocked(input.PlayerID)
		case engine.Capture:
			captures = append(captures, e)
		}
	}
	o.mu.Unlock()

	slog.Info("Answer resolved",
		"player_id", input.PlayerID,
		"encounter_id", next.EncounterID,
		"choice", input.Choice,
		"enemy_hp", next.EnemyHP,
		"player_hp", next.PlayerHP,
		"finished", next.Finished,
	)

	for _, c := range captures {
		o.recordCapture(ctx, input.PlayerID, c.RegionID, next.Enemy.Name)
	}
	if next.Finished == entities.OutcomeLose {
		o.publish(ctx, rpgtoolkit.NewDefeatedEvent(input.PlayerID, next.RegionID, next.Enemy.Name))
	}

	return &SubmitAnswerOutput{State: next.Clone()}, nil
}

// GetEncounter returns the current state of the active encounter
func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.loadLocked(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetEncounterOutput{State: state}, nil
}

// AbandonEncounter drops the active encounter and any pending counter
func (o *orchestrator) AbandonEncounter(ctx context.Context, input *AbandonEncounterInput) (*AbandonEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.cancelCounterLocked(input.PlayerID)
	o.generations[input.PlayerID]++

	out, err := o.encounterRepo.Delete(ctx, encounters.DeleteInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to abandon encounter")
	}

	slog.Info("Encounter abandoned",
		"player_id", input.PlayerID,
		"encounter_id", out.State.EncounterID,
	)

	return &AbandonEncounterOutput{State: out.State}, nil
}

// ListRegions returns every region a player can battle in
func (o *orchestrator) ListRegions(_ context.Context, _ *ListRegionsInput) (*ListRegionsOutput, error) {
	ids := o.dataset.RegionIDs()
	regions := make([]RegionSummary, 0, len(ids))
	for _, id := range ids {
		c, _ := o.dataset.Creature(id)
		regions = append(regions, RegionSummary{
			RegionID:   id,
			Name:       c.Name,
			Species:    c.Species,
			Image:      c.Image,
			Difficulty: c.Difficulty,
			QuizCount:  len(c.Quizzes),
		})
	}

	return &ListRegionsOutput{Regions: regions}, nil
}
