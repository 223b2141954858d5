package v1alpha1

import (
	"context"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/encounter"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
)

// Request field names
const (
	FieldPlayerID = "player_id"
	FieldRegionID = "region_id"
	FieldChoice   = "choice"
)

// HandlerConfig holds dependencies for the battle handler
type HandlerConfig struct {
	EncounterService encounter.Service
	ProgressService  progress.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	if c.ProgressService == nil {
		vb.RequiredField("ProgressService")
	}

	return vb.Build()
}

// Handler implements BattleServiceServer
type Handler struct {
	encounterService encounter.Service
	progressService  progress.Service
}

// NewHandler creates a new battle handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		encounterService: cfg.EncounterService,
		progressService:  cfg.ProgressService,
	}, nil
}

// StartEncounter begins a battle in the requested region
func (h *Handler) StartEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	regionID, err := requiredString(req, FieldRegionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.encounterService.StartEncounter(ctx, &encounter.StartEncounterInput{
		PlayerID: playerID,
		RegionID: regionID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"encounter": stateToMap(output.State)})
}

// SubmitAnswer applies the player's choice to the active encounter
func (h *Handler) SubmitAnswer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	choice, err := optionalInt(req, FieldChoice)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.encounterService.SubmitAnswer(ctx, &encounter.SubmitAnswerInput{
		PlayerID: playerID,
		Choice:   choice,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"encounter": stateToMap(output.State)})
}

// GetEncounter returns the player's active encounter
func (h *Handler) GetEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.encounterService.GetEncounter(ctx, &encounter.GetEncounterInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"encounter": stateToMap(output.State)})
}

// AbandonEncounter drops the player's active encounter
func (h *Handler) AbandonEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.encounterService.AbandonEncounter(ctx, &encounter.AbandonEncounterInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"encounter": stateToMap(output.State)})
}

// ListRegions lists the regions available in the loaded dataset
func (h *Handler) ListRegions(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.encounterService.ListRegions(ctx, &encounter.ListRegionsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	regions := make([]any, 0, len(output.Regions))
	for _, r := range output.Regions {
		regions = append(regions, regionToMap(r))
	}

	return toStruct(map[string]any{"regions": regions})
}

// GetDex lists the regions the player has captured
func (h *Handler) GetDex(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.progressService.GetDex(ctx, &progress.GetDexInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]any, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, dexEntryToMap(e))
	}

	return toStruct(map[string]any{
		FieldPlayerID: playerID,
		"entries":     entries,
	})
}

// ResetDex clears the player's Dex
func (h *Handler) ResetDex(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.progressService.ResetDex(ctx, &progress.ResetDexInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"removed": output.Removed})
}

func requiredString(req *structpb.Struct, field string) (string, error) {
	v, ok := req.GetFields()[field]
	if !ok || v.GetStringValue() == "" {
		return "", errors.InvalidArgumentf("%s is required", field)
	}
	return v.GetStringValue(), nil
}

// optionalInt reads a whole number field. Missing fields read as zero, which
// is also what fallback encounters expect.
func optionalInt(req *structpb.Struct, field string) (int, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return 0, nil
	}

	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", field)
	}
	return int(n.NumberValue), nil
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}
	return s, nil
}

var _ BattleServiceServer = (*Handler)(nil)
