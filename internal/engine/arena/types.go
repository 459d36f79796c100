package arena

import "strings"

// State is where the battle is in its lifecycle
type State int

// Battle states
const (
	StateNotStarted State = iota
	StateRunning
	StateEnded
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is the terminal verdict of a battle
type Outcome string

// Battle outcomes
const (
	OutcomeNone      Outcome = ""
	OutcomePlayerWon Outcome = "player"
	OutcomeEnemyWon  Outcome = "enemy"
	OutcomeDraw      Outcome = "draw"
)

// Snapshot is a display view of one combatant, rounded to one decimal
type Snapshot struct {
	Name    string
	Health  float64
	Stamina float64
}

// TurnResult is what an action call reports back
type TurnResult struct {
	// Messages in the order they happened; the battle summary comes last when the fight ended
	Messages    []string
	Player      Snapshot
	Enemy       Snapshot
	BattleEnded bool
	Outcome     Outcome
	// Winner is the winning combatant's name, empty on a draw or while running
	Winner string
}

// Message joins all messages of the turn
func (r *TurnResult) Message() string {
	return strings.Join(r.Messages, " ")
}

// BattleResult is the terminal summary of a finished battle
type BattleResult struct {
	Outcome Outcome
	Winner  string
	Message string
	Turns   int
}
