package encounters

import (
	"context"
	"sync"

	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.BattleState
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.BattleState),
	}
}

// Save stores a copy of the state
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.store[input.PlayerID]
	r.store[input.PlayerID] = input.State.Clone()

	return &SaveOutput{Replaced: replaced}, nil
}

// Get returns a copy so callers cannot modify stored state
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFound("encounter not found").WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{State: state.Clone()}, nil
}

// Delete removes an encounter and returns its last state
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFound("encounter not found").WithMeta("player_id", input.PlayerID)
	}
	delete(r.store, input.PlayerID)

	return &DeleteOutput{State: state}, nil
}
