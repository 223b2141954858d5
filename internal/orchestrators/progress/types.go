package progress

import "time"

// CaptureInput defines the request for recording a defeated creature
type CaptureInput struct {
	PlayerID string
	RegionID string
}

// CaptureOutput reports whether the capture was new
type CaptureOutput struct {
	Added bool
}

// GetDexInput defines the request for reading a player's Dex
type GetDexInput struct {
	PlayerID string
}

// DexEntry is one captured region
type DexEntry struct {
	RegionID   string
	CapturedAt time.Time
}

// GetDexOutput lists captured regions sorted by region ID
type GetDexOutput struct {
	Entries []DexEntry
}

// ResetDexInput defines the request for clearing a player's Dex
type ResetDexInput struct {
	PlayerID string
}

// ResetDexOutput reports how many captures were cleared
type ResetDexOutput struct {
	Removed int
}
