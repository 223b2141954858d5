package engine

import "github.com/celala99/cela-geo-quest/internal/entities"

// toughDifficulty is the first difficulty at which creatures resist the
// player and hit back harder
const toughDifficulty = 4

// FallbackDamage is dealt by any action against a creature without quizzes
const FallbackDamage = 1

// Damage returns the damage dealt by the attacker against a creature of the
// given difficulty. Difficulty is clamped to the valid range first.
func Damage(role Role, difficulty int) int {
	tough := entities.ClampDifficulty(difficulty) >= toughDifficulty

	switch role {
	case RoleEnemy:
		if tough {
			return 2
		}
		return 1
	default:
		if tough {
			return 1
		}
		return 2
	}
}
