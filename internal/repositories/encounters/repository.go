// Package encounters stores the battle state of each player's active
// encounter
package encounters

import (
	"context"

	"github.com/celala99/cela-geo-quest/internal/entities"
)

// Repository defines the storage interface for active encounters. A player
// has at most one active encounter, so states are keyed by player ID.
type Repository interface {
	// Save stores or replaces the player's encounter
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the player's encounter
	// Returns errors.NotFound if the player has no active encounter
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the player's encounter
	// Returns errors.NotFound if the player has no active encounter
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving an encounter
type SaveInput struct {
	PlayerID string
	State    *entities.BattleState
}

// SaveOutput defines the response for saving an encounter
type SaveOutput struct {
	// Replaced is true when a previous encounter was overwritten
	Replaced bool
}

// GetInput defines the request for retrieving an encounter
type GetInput struct {
	PlayerID string
}

// GetOutput defines the response for retrieving an encounter
type GetOutput struct {
	State *entities.BattleState
}

// DeleteInput defines the request for deleting an encounter
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the response for deleting an encounter
type DeleteOutput struct {
	State *entities.BattleState
}
