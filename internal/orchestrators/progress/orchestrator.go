// Package progress implements the progress tracker that records captured
// regions in each player's Dex
package progress

//go:generate mockgen -destination=mock/mock_service.go -package=progressmock github.com/celala99/cela-geo-quest/internal/orchestrators/progress Service

import (
	"context"
	"log/slog"

	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/repositories/dex"
)

// Service defines the interface for Dex progress operations
type Service interface {
	// Capture adds a region to the player's Dex. Capturing a region twice
	// leaves the Dex unchanged.
	Capture(ctx context.Context, input *CaptureInput) (*CaptureOutput, error)

	// GetDex lists the player's captured regions
	GetDex(ctx context.Context, input *GetDexInput) (*GetDexOutput, error)

	// ResetDex clears the player's Dex
	ResetDex(ctx context.Context, input *ResetDexInput) (*ResetDexOutput, error)
}

// Config holds the dependencies for the progress orchestrator
type Config struct {
	DexRepo dex.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DexRepo == nil {
		vb.RequiredField("DexRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	dexRepo dex.Repository
}

// NewOrchestrator creates a new progress orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dexRepo: cfg.DexRepo,
	}, nil
}

// Capture adds a region to the player's Dex
func (o *orchestrator) Capture(ctx context.Context, input *CaptureInput) (*CaptureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("RegionID", input.RegionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.dexRepo.Add(ctx, dex.AddInput{
		PlayerID: input.PlayerID,
		RegionID: input.RegionID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record capture")
	}

	if out.Added {
		slog.Info("Region captured",
			"player_id", input.PlayerID,
			"region_id", input.RegionID,
		)
	}

	return &CaptureOutput{Added: out.Added}, nil
}

// GetDex lists the player's captured regions
func (o *orchestrator) GetDex(ctx context.Context, input *GetDexInput) (*GetDexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.dexRepo.List(ctx, dex.ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dex")
	}

	entries := make([]DexEntry, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = DexEntry{RegionID: e.RegionID, CapturedAt: e.CapturedAt}
	}

	return &GetDexOutput{Entries: entries}, nil
}

// ResetDex clears the player's Dex
func (o *orchestrator) ResetDex(ctx context.Context, input *ResetDexInput) (*ResetDexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.dexRepo.Reset(ctx, dex.ResetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reset dex")
	}

	slog.Info("Dex reset",
		"player_id", input.PlayerID,
		"removed", out.Removed,
	)

	return &ResetDexOutput{Removed: out.Removed}, nil
}
