package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/celala99/cela-geo-quest/internal/engine"
	"github.com/celala99/cela-geo-quest/internal/entities"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func quiz(answer int, hint string) entities.Quiz {
	return entities.Quiz{
		Question: "Capital?",
		Choices:  [entities.ChoiceCount]string{"Paris", "Rome", "Madrid", "Lisbon"},
		Answer:   answer,
		Hint:     hint,
	}
}

func creature(hp, difficulty int, quizzes ...entities.Quiz) entities.Creature {
	return entities.Creature{
		Name:       "River Sphinx",
		Species:    "sphinx",
		Difficulty: difficulty,
		HP:         hp,
		Quizzes:    quizzes,
	}
}

func (s *EngineTestSuite) assertInvariants(st entities.BattleState) {
	s.GreaterOrEqual(st.EnemyHP, 0)
	s.LessOrEqual(st.EnemyHP, st.EnemyMaxHP)
	s.GreaterOrEqual(st.PlayerHP, 0)
	s.LessOrEqual(st.PlayerHP, st.PlayerMaxHP)
	s.Equal(st.EnemyHP == 0, st.CapturedVisual)
}

func (s *EngineTestSuite) TestStart() {
	testCases := []struct {
		name       string
		hp         int
		difficulty int
		wantMaxHP  int
	}{
		{name: "baseline difficulty keeps base hp", hp: 7, difficulty: 3, wantMaxHP: 7},
		{name: "hard creature is tougher", hp: 7, difficulty: 5, wantMaxHP: 9},
		{name: "easy creature is softer", hp: 7, difficulty: 1, wantMaxHP: 5},
		{name: "minimum hp never drops below floor", hp: 3, difficulty: 1, wantMaxHP: 3},
		{name: "maximum hp never exceeds ceiling", hp: 30, difficulty: 5, wantMaxHP: 30},
		{name: "out of range difficulty is clamped", hp: 10, difficulty: 9, wantMaxHP: 12},
		{name: "missing hp uses default", hp: 0, difficulty: 3, wantMaxHP: entities.DefaultCreatureHP},
		{name: "negative hp uses default", hp: -4, difficulty: 5, wantMaxHP: entities.DefaultCreatureHP + 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st := engine.Start("nile", creature(tc.hp, tc.difficulty, quiz(1, "")))

			s.Equal(tc.wantMaxHP, st.EnemyMaxHP)
			s.Equal(tc.wantMaxHP, st.EnemyHP)
			s.Equal(entities.PlayerMaxHP, st.PlayerHP)
			s.Equal(entities.PlayerMaxHP, st.PlayerMaxHP)
			s.Equal(0, st.QuizIndex)
			s.Equal("A wild River Sphinx appeared!", st.LastMessage)
			s.Equal(entities.OutcomeNone, st.Finished)
			s.False(st.Answered)
			s.False(st.CapturedVisual)
		})
	}
}

func (s *EngineTestSuite) TestStart_SnapshotsCreature() {
	c := creature(7, 3, quiz(1, ""))
	st := engine.Start("nile", c)

	c.Quizzes[0].Answer = 3
	c.Name = "Changed"

	s.Equal(1, st.Enemy.Quizzes[0].Answer)
	s.Equal("River Sphinx", st.Enemy.Name)
}

// A creature with hp 7, difficulty 3 and one quiz answered correctly every time
func (s *EngineTestSuite) TestCorrectAnswersWinBeforePlayerFalls() {
	st := *engine.Start("nile", creature(7, 3, quiz(1, "")))
	s.Equal(7, st.EnemyMaxHP)

	wantEnemy := []int{5, 3, 1}
	wantPlayer := []int{4, 3, 2}
	for i := range wantEnemy {
		var effects []engine.Effect
		st, effects = engine.Resolve(st, engine.Answer{Choice: 1})
		s.Equal(wantEnemy[i], st.EnemyHP)
		s.True(st.Answered)
		s.Equal([]engine.Effect{engine.ScheduleCounter{}}, effects)
		s.Equal("Correct! You hit River Sphinx for 2 damage.", st.LastMessage)

		st, effects = engine.Resolve(st, engine.Counter{})
		s.Empty(effects)
		s.Equal(wantPlayer[i], st.PlayerHP)
		s.False(st.Answered)
		s.Equal(0, st.QuizIndex, "single quiz wraps around")
		s.assertInvariants(st)
	}

	st, effects := engine.Resolve(st, engine.Answer{Choice: 1})
	s.Equal(0, st.EnemyHP)
	s.Equal(2, st.PlayerHP)
	s.Equal(entities.OutcomeWin, st.Finished)
	s.True(st.CapturedVisual)
	s.False(st.Answered)
	s.Equal([]engine.Effect{engine.Capture{RegionID: "nile"}}, effects)
	s.assertInvariants(st)
}

// A wrong answer against a difficulty 5 creature costs 2 at once
func (s *EngineTestSuite) TestWrongAnswerCountersImmediately() {
	st := *engine.Start("alps", creature(9, 5, quiz(1, "Think west."), quiz(2, "")))

	st, effects := engine.Resolve(st, engine.Answer{Choice: 0})

	s.Empty(effects)
	s.Equal(3, st.PlayerHP)
	s.Equal(1, st.QuizIndex)
	s.False(st.Answered)
	s.Equal("Wrong! River Sphinx hits you for 2 damage. Hint: Think west.", st.LastMessage)

	st, _ = engine.Resolve(st, engine.Answer{Choice: 0})
	s.Equal(0, st.QuizIndex, "index wraps to the first quiz")
	s.Equal(1, st.PlayerHP)
}

func (s *EngineTestSuite) TestWrongAnswersLose() {
	st := *engine.Start("alps", creature(9, 5, quiz(1, "hint")))

	for i := 0; i < 3; i++ {
		st, _ = engine.Resolve(st, engine.Answer{Choice: 3})
		s.assertInvariants(st)
	}

	s.Equal(0, st.PlayerHP)
	s.Equal(entities.OutcomeLose, st.Finished)
	s.Equal("Wrong! River Sphinx hits you for 2 damage. You were defeated by River Sphinx.", st.LastMessage)
}

// No quizzes means fixed 1 damage with no retaliation
func (s *EngineTestSuite) TestFallbackMode() {
	st := *engine.Start("sahara", creature(3, 3))
	s.Equal(entities.NoQuiz, st.QuizIndex)
	s.True(st.FallbackMode())

	for want := 2; want >= 1; want-- {
		var effects []engine.Effect
		st, effects = engine.Resolve(st, engine.Answer{Choice: 2})
		s.Empty(effects)
		s.Equal(want, st.EnemyHP)
		s.Equal(entities.PlayerMaxHP, st.PlayerHP)
		s.False(st.Answered)
		s.Equal("You attack River Sphinx for 1 damage.", st.LastMessage)
	}

	st, effects := engine.Resolve(st, engine.Answer{})
	s.Equal(0, st.EnemyHP)
	s.Equal(entities.OutcomeWin, st.Finished)
	s.True(st.CapturedVisual)
	s.Equal([]engine.Effect{engine.Capture{RegionID: "sahara"}}, effects)
}

func (s *EngineTestSuite) TestFallbackMode_IgnoresCounter() {
	st := *engine.Start("sahara", creature(3, 3))

	next, effects := engine.Resolve(st, engine.Counter{})

	s.Equal(st, next)
	s.Empty(effects)
}

// Exact kill on a correct answer skips the counter
func (s *EngineTestSuite) TestExactKillSkipsCounter() {
	st := *engine.Start("nile", creature(3, 3, quiz(0, "")))
	s.Equal(3, st.EnemyMaxHP)

	st, effects := engine.Resolve(st, engine.Answer{Choice: 0})
	s.Equal(1, st.EnemyHP)
	s.Equal([]engine.Effect{engine.ScheduleCounter{}}, effects)
	st, _ = engine.Resolve(st, engine.Counter{})
	s.Equal(4, st.PlayerHP)

	st, effects = engine.Resolve(st, engine.Answer{Choice: 0})
	s.Equal(0, st.EnemyHP)
	s.Equal(4, st.PlayerHP)
	s.Equal(entities.OutcomeWin, st.Finished)
	s.True(st.CapturedVisual)

	captures := 0
	for _, e := range effects {
		switch e.(type) {
		case engine.ScheduleCounter:
			s.Fail("no counter may be scheduled on a kill")
		case engine.Capture:
			captures++
		}
	}
	s.Equal(1, captures)
}

func (s *EngineTestSuite) TestAnswerIgnoredWhileLocked() {
	st := *engine.Start("nile", creature(7, 3, quiz(1, "")))
	st, _ = engine.Resolve(st, engine.Answer{Choice: 1})
	s.Require().True(st.Answered)

	next, effects := engine.Resolve(st, engine.Answer{Choice: 1})

	s.Equal(st, next)
	s.Empty(effects)
}

func (s *EngineTestSuite) TestCounterWithoutPendingIsNoop() {
	st := *engine.Start("nile", creature(7, 3, quiz(1, "")))

	next, effects := engine.Resolve(st, engine.Counter{})

	s.Equal(st, next)
	s.Empty(effects)
}

func (s *EngineTestSuite) TestCounterCanDefeatPlayer() {
	st := *engine.Start("alps", creature(30, 5, quiz(1, ""), quiz(2, "")))
	st.PlayerHP = 2

	st, _ = engine.Resolve(st, engine.Answer{Choice: 1})
	st, effects := engine.Resolve(st, engine.Counter{})

	s.Empty(effects)
	s.Equal(0, st.PlayerHP)
	s.Equal(entities.OutcomeLose, st.Finished)
	s.False(st.Answered)
	s.Equal("River Sphinx strikes back for 2 damage. You were defeated by River Sphinx.", st.LastMessage)
}

func (s *EngineTestSuite) TestTerminalStateIsAbsorbing() {
	st := *engine.Start("sahara", creature(3, 1))
	for !st.IsFinished() {
		st, _ = engine.Resolve(st, engine.Answer{})
	}

	for _, ev := range []engine.Event{engine.Answer{Choice: 0}, engine.Answer{Choice: 3}, engine.Counter{}} {
		next, effects := engine.Resolve(st, ev)
		s.Equal(st, next)
		s.Empty(effects)
	}
}

func (s *EngineTestSuite) TestInvariantsHoldAcrossMixedPlay() {
	for difficulty := 1; difficulty <= 5; difficulty++ {
		st := *engine.Start("mixed", creature(12, difficulty, quiz(0, ""), quiz(1, ""), quiz(2, "")))
		for turn := 0; turn < 40 && !st.IsFinished(); turn++ {
			choice := turn % 4
			var effects []engine.Effect
			st, effects = engine.Resolve(st, engine.Answer{Choice: choice})
			s.assertInvariants(st)
			for _, e := range effects {
				if _, ok := e.(engine.ScheduleCounter); ok {
					st, _ = engine.Resolve(st, engine.Counter{})
					s.assertInvariants(st)
				}
			}
		}
		s.True(st.IsFinished(), "difficulty %d should finish", difficulty)
	}
}
