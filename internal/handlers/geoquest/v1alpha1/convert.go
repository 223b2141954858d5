package v1alpha1

import (
	"time"

	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/encounter"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
)

// stateToMap renders a battle state for the wire. The current quiz is sent
// without its answer.
func stateToMap(s *entities.BattleState) map[string]any {
	m := map[string]any{
		"encounter_id":    s.EncounterID,
		"region_id":       s.RegionID,
		"enemy":           creatureToMap(s.Enemy),
		"enemy_hp":        s.EnemyHP,
		"enemy_max_hp":    s.EnemyMaxHP,
		"player_hp":       s.PlayerHP,
		"player_max_hp":   s.PlayerMaxHP,
		"quiz_index":      s.QuizIndex,
		"last_message":    s.LastMessage,
		"finished":        string(s.Finished),
		"answered":        s.Answered,
		"captured_visual": s.CapturedVisual,
		"version":         s.Version,
	}

	if quiz, ok := s.CurrentQuiz(); ok && !s.IsFinished() {
		choices := make([]any, 0, len(quiz.Choices))
		for _, c := range quiz.Choices {
			choices = append(choices, c)
		}
		m["quiz"] = map[string]any{
			"question": quiz.Question,
			"choices":  choices,
		}
	}

	return m
}

func creatureToMap(c entities.Creature) map[string]any {
	return map[string]any{
		"name":        c.Name,
		"species":     c.Species,
		"image":       c.Image,
		"description": c.Description,
		"difficulty":  c.Difficulty,
	}
}

func regionToMap(r encounter.RegionSummary) map[string]any {
	return map[string]any{
		"region_id":  r.RegionID,
		"name":       r.Name,
		"species":    r.Species,
		"image":      r.Image,
		"difficulty": r.Difficulty,
		"quiz_count": r.QuizCount,
	}
}

func dexEntryToMap(e progress.DexEntry) map[string]any {
	return map[string]any{
		"region_id":   e.RegionID,
		"captured_at": e.CapturedAt.UTC().Format(time.RFC3339),
	}
}
