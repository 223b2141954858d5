package engine

import (
	"fmt"

	"github.com/celala99/cela-geo-quest/internal/entities"
)

// baselineDifficulty is the difficulty at which a creature keeps its base HP
const baselineDifficulty = 3

// EnemyMaxHP derives the enemy hit points: base HP clamped, shifted by how far
// the difficulty is from the baseline, then clamped again. A creature without
// HP uses entities.DefaultCreatureHP as its base.
func EnemyMaxHP(c entities.Creature) int {
	hp := c.HP
	if hp < 1 {
		hp = entities.DefaultCreatureHP
	}
	base := entities.ClampCreatureHP(hp)
	shift := entities.ClampDifficulty(c.Difficulty) - baselineDifficulty
	return entities.ClampCreatureHP(base + shift)
}

// Start creates the battle state for a fresh encounter against c
func Start(regionID string, c entities.Creature) *entities.BattleState {
	enemy := c.Clone()
	enemy.Difficulty = entities.ClampDifficulty(enemy.Difficulty)
	maxHP := EnemyMaxHP(enemy)

	quizIndex := entities.NoQuiz
	if len(enemy.Quizzes) > 0 {
		quizIndex = 0
	}

	return &entities.BattleState{
		RegionID:    regionID,
		Enemy:       enemy,
		EnemyHP:     maxHP,
		EnemyMaxHP:  maxHP,
		PlayerHP:    entities.PlayerMaxHP,
		PlayerMaxHP: entities.PlayerMaxHP,
		QuizIndex:   quizIndex,
		LastMessage: fmt.Sprintf("A wild %s appeared!", enemy.Name),
		Finished:    entities.OutcomeNone,
	}
}
