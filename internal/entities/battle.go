package entities

// Outcome is the terminal result of an encounter
type Outcome string

// Outcomes. The zero value means the encounter is still running.
const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// PlayerMaxHP is the fixed hit point pool of the player
const PlayerMaxHP = 5

// NoQuiz marks an encounter whose creature has no quizzes
const NoQuiz = -1

// BattleState is the state of one active encounter
type BattleState struct {
	EncounterID string `json:"encounter_id"`
	RegionID    string `json:"region_id"`

	// Enemy is a snapshot of the creature taken when the encounter started
	Enemy Creature `json:"enemy"`

	EnemyHP     int `json:"enemy_hp"`
	EnemyMaxHP  int `json:"enemy_max_hp"`
	PlayerHP    int `json:"player_hp"`
	PlayerMaxHP int `json:"player_max_hp"`

	// QuizIndex is NoQuiz or an index into Enemy.Quizzes
	QuizIndex int `json:"quiz_index"`

	LastMessage string  `json:"last_message"`
	Finished    Outcome `json:"finished,omitempty"`

	// Answered locks input while a delayed enemy counter is pending
	Answered bool `json:"answered"`

	CapturedVisual bool `json:"captured_visual"`

	// Version increases with every accepted transition
	Version int `json:"version"`
}

// IsFinished reports whether the encounter reached a terminal state
func (s *BattleState) IsFinished() bool {
	return s.Finished != OutcomeNone
}

// FallbackMode reports whether the encounter runs without quizzes
func (s *BattleState) FallbackMode() bool {
	return s.QuizIndex == NoQuiz
}

// CurrentQuiz returns the quiz the player must answer next
func (s *BattleState) CurrentQuiz() (Quiz, bool) {
	if s.QuizIndex < 0 || s.QuizIndex >= len(s.Enemy.Quizzes) {
		return Quiz{}, false
	}
	return s.Enemy.Quizzes[s.QuizIndex], true
}

// Clone returns a deep copy of the state
func (s *BattleState) Clone() *BattleState {
	if s == nil {
		return nil
	}
	out := *s
	out.Enemy = s.Enemy.Clone()
	return &out
}
