// Package dex provides the interface and storage backends for the collection
// log of captured regions
package dex

//go:generate mockgen -destination=mock/mock_repository.go -package=dexmock github.com/celala99/cela-geo-quest/internal/repositories/dex Repository

import (
	"context"
	"time"
)

// Entry is one captured region in a player's Dex
type Entry struct {
	RegionID   string
	CapturedAt time.Time
}

// AddInput contains parameters for recording a capture
type AddInput struct {
	PlayerID string
	RegionID string
}

// AddOutput reports whether the region was new to the Dex
type AddOutput struct {
	Added bool
}

// ListInput contains parameters for listing a Dex
type ListInput struct {
	PlayerID string
}

// ListOutput contains the captured entries sorted by region ID
type ListOutput struct {
	Entries []Entry
}

// ResetInput contains parameters for clearing a Dex
type ResetInput struct {
	PlayerID string
}

// ResetOutput reports how many entries were removed
type ResetOutput struct {
	Removed int
}

// Repository defines Dex persistence. Add is idempotent: adding a region
// that is already present changes nothing and reports Added=false.
type Repository interface {
	// Add records a captured region
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// List returns every captured region for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Reset removes every entry for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	Reset(ctx context.Context, input ResetInput) (*ResetOutput, error)
}

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errRegionIDEmpty = "region ID cannot be empty"
)
