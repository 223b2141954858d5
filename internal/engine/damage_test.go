package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celala99/cela-geo-quest/internal/engine"
)

func TestDamage(t *testing.T) {
	testCases := []struct {
		difficulty int
		player     int
		enemy      int
	}{
		{difficulty: -3, player: 2, enemy: 1},
		{difficulty: 1, player: 2, enemy: 1},
		{difficulty: 2, player: 2, enemy: 1},
		{difficulty: 3, player: 2, enemy: 1},
		{difficulty: 4, player: 1, enemy: 2},
		{difficulty: 5, player: 1, enemy: 2},
		{difficulty: 12, player: 1, enemy: 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.player, engine.Damage(engine.RolePlayer, tc.difficulty), "player at difficulty %d", tc.difficulty)
		assert.Equal(t, tc.enemy, engine.Damage(engine.RoleEnemy, tc.difficulty), "enemy at difficulty %d", tc.difficulty)
	}
}

func TestDamage_FavorsPlayerUpToThree(t *testing.T) {
	for d := 1; d <= 5; d++ {
		player := engine.Damage(engine.RolePlayer, d)
		enemy := engine.Damage(engine.RoleEnemy, d)

		assert.Contains(t, []int{1, 2}, player)
		assert.Contains(t, []int{1, 2}, enemy)
		if d <= 3 {
			assert.Greater(t, player, enemy)
		} else {
			assert.Greater(t, enemy, player)
		}
	}
}
