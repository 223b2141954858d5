package engine

import (
	"fmt"

	"github.com/celala99/cela-geo-quest/internal/entities"
)

// Resolve applies one event to the battle state and returns the next state
// with the effects the caller must carry out. Terminal states absorb every
// event unchanged.
func Resolve(s entities.BattleState, ev Event) (entities.BattleState, []Effect) {
	if s.IsFinished() {
		return s, nil
	}

	switch e := ev.(type) {
	case Answer:
		return resolveAnswer(s, e)
	case Counter:
		return resolveCounter(s)
	default:
		return s, nil
	}
}

func resolveAnswer(s entities.BattleState, a Answer) (entities.BattleState, []Effect) {
	if s.FallbackMode() {
		return fallbackAttack(s)
	}
	if s.Answered {
		return s, nil
	}

	quiz, ok := s.CurrentQuiz()
	if !ok {
		return s, nil
	}
	if a.Choice == quiz.Answer {
		return correctAnswer(s)
	}
	return wrongAnswer(s, quiz)
}

func fallbackAttack(s entities.BattleState) (entities.BattleState, []Effect) {
	s.EnemyHP = reduce(s.EnemyHP, FallbackDamage)
	s.Version++
	if s.EnemyHP == 0 {
		return win(s)
	}

	s.LastMessage = fmt.Sprintf("You attack %s for %d damage.", s.Enemy.Name, FallbackDamage)
	return s, nil
}

func correctAnswer(s entities.BattleState) (entities.BattleState, []Effect) {
	dmg := Damage(RolePlayer, s.Enemy.Difficulty)
	s.EnemyHP = reduce(s.EnemyHP, dmg)
	s.Version++
	if s.EnemyHP == 0 {
		return win(s)
	}

	s.Answered = true
	s.LastMessage = fmt.Sprintf("Correct! You hit %s for %d damage.", s.Enemy.Name, dmg)
	return s, []Effect{ScheduleCounter{}}
}

func wrongAnswer(s entities.BattleState, quiz entities.Quiz) (entities.BattleState, []Effect) {
	dmg := Damage(RoleEnemy, s.Enemy.Difficulty)
	s.PlayerHP = reduce(s.PlayerHP, dmg)
	s.QuizIndex = nextQuiz(s)
	s.Version++

	msg := fmt.Sprintf("Wrong! %s hits you for %d damage.", s.Enemy.Name, dmg)
	if s.PlayerHP == 0 {
		return lose(s, msg)
	}
	if quiz.Hint != "" {
		msg += " Hint: " + quiz.Hint
	}
	s.LastMessage = msg
	return s, nil
}

// resolveCounter reads the state as it is when the counter fires
func resolveCounter(s entities.BattleState) (entities.BattleState, []Effect) {
	if s.FallbackMode() || !s.Answered {
		return s, nil
	}

	dmg := Damage(RoleEnemy, s.Enemy.Difficulty)
	s.PlayerHP = reduce(s.PlayerHP, dmg)
	s.QuizIndex = nextQuiz(s)
	s.Answered = false
	s.Version++

	msg := fmt.Sprintf("%s strikes back for %d damage.", s.Enemy.Name, dmg)
	if s.PlayerHP == 0 {
		return lose(s, msg)
	}
	s.LastMessage = msg
	return s, nil
}

func win(s entities.BattleState) (entities.BattleState, []Effect) {
	s.Finished = entities.OutcomeWin
	s.CapturedVisual = true
	s.Answered = false
	s.LastMessage = fmt.Sprintf("You defeated %s! It joins your Dex.", s.Enemy.Name)
	return s, []Effect{Capture{RegionID: s.RegionID}}
}

func lose(s entities.BattleState, msg string) (entities.BattleState, []Effect) {
	s.Finished = entities.OutcomeLose
	s.Answered = false
	s.LastMessage = fmt.Sprintf("%s You were defeated by %s.", msg, s.Enemy.Name)
	return s, nil
}

// nextQuiz wraps around so quizzes repeat within an encounter
func nextQuiz(s entities.BattleState) int {
	n := len(s.Enemy.Quizzes)
	if n == 0 {
		return entities.NoQuiz
	}
	return (s.QuizIndex + 1) % n
}

// reduce subtracts damage and never goes below zero
func reduce(hp, dmg int) int {
	hp -= dmg
	if hp < 0 {
		return 0
	}
	return hp
}
