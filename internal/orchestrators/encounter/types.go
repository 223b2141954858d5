package encounter

import "github.com/celala99/cela-geo-quest/internal/entities"

// StartEncounterInput defines the request for starting an encounter
type StartEncounterInput struct {
	PlayerID string
	RegionID string
}

// StartEncounterOutput defines the response for starting an encounter
type StartEncounterOutput struct {
	State *entities.BattleState
}

// SubmitAnswerInput defines a player action. Choice indexes the current
// quiz's choices and is ignored for creatures without quizzes.
type SubmitAnswerInput struct {
	PlayerID string
	Choice   int
}

// SubmitAnswerOutput returns the state right after the action. When
// State.Answered is true an enemy counter is pending.
type SubmitAnswerOutput struct {
	State *entities.BattleState
}

// GetEncounterInput defines the request for reading an encounter
type GetEncounterInput struct {
	PlayerID string
}

// GetEncounterOutput defines the response for reading an encounter
type GetEncounterOutput struct {
	State *entities.BattleState
}

// AbandonEncounterInput defines the request for leaving an encounter
type AbandonEncounterInput struct {
	PlayerID string
}

// AbandonEncounterOutput returns the last state of the abandoned encounter
type AbandonEncounterOutput struct {
	State *entities.BattleState
}

// ListRegionsInput defines the request for listing selectable regions
type ListRegionsInput struct{}

// RegionSummary describes a selectable region and its creature
type RegionSummary struct {
	RegionID   string
	Name       string
	Species    string
	Image      string
	Difficulty int
	QuizCount  int
}

// ListRegionsOutput lists regions sorted by region ID
type ListRegionsOutput struct {
	Regions []RegionSummary
}
