// Package arena drives a two-combatant battle from start to a win, loss or draw.
//
// Every player action is answered immediately by the enemy, so there is no
// separate turn owner: the arena only tracks whether the fight is running.
// An Arena is not safe for concurrent use; callers serialize access per battle.
package arena

import (
	"fmt"

	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Config holds the tunables of a battle
type Config struct {
	// StaminaRegen is restored to both sides after every turn that leaves the
	// battle running, scaled by each class stamina multiplier. Zero disables it.
	StaminaRegen float64
}

// Validate ensures the tunables are sane
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StaminaRegen < 0 {
		vb.Field("StaminaRegen", "must not be negative")
	}

	return vb.Build()
}

// Arena is the battle engine for one player and one enemy
type Arena struct {
	staminaRegen float64

	player *combat.Combatant
	enemy  *combat.Combatant

	state  State
	turns  int
	log    []string
	result *BattleResult
}

// New creates an arena in the not-started state. A nil config uses the defaults.
func New(cfg *Config) (*Arena, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid arena config")
	}

	return &Arena{
		staminaRegen: cfg.StaminaRegen,
		state:        StateNotStarted,
	}, nil
}

// StartGame binds both combatants and starts the battle. Both must already be
// fully equipped; anything else is a setup bug reported as FailedPrecondition.
func (a *Arena) StartGame(player, enemy *combat.Combatant) error {
	if player == nil || enemy == nil {
		return errors.FailedPrecondition("both player and enemy are required to start a battle")
	}
	for _, c := range []*combat.Combatant{player, enemy} {
		if !c.Equipped() {
			return errors.FailedPreconditionf("%s must have a weapon and armor equipped", c.Name()).
				WithMeta("combatant_id", c.GetID())
		}
	}

	a.player = player
	a.enemy = enemy
	a.state = StateRunning
	a.turns = 0
	a.log = nil
	a.result = nil

	// a side that is already down ends the battle before it begins
	a.checkEnd()

	return nil
}

// State returns the lifecycle state
func (a *Arena) State() State {
	return a.state
}

// GameIsRunning is true exactly while both combatants have health above zero
func (a *Arena) GameIsRunning() bool {
	return a.state == StateRunning
}

// Player returns the player-controlled combatant
func (a *Arena) Player() *combat.Combatant {
	return a.player
}

// Enemy returns the automated opponent
func (a *Arena) Enemy() *combat.Combatant {
	return a.enemy
}

// Turns returns how many compound turns have been played
func (a *Arena) Turns() int {
	return a.turns
}

// Log returns every message of the battle so far
func (a *Arena) Log() []string {
	out := make([]string, len(a.log))
	copy(out, a.log)
	return out
}

// PlayerHit resolves the player's attack followed by the enemy's reply
func (a *Arena) PlayerHit() (*TurnResult, error) {
	return a.playTurn(func() string {
		return a.player.Hit(a.enemy)
	})
}

// PlayerUseSkill resolves the player's skill followed by the enemy's reply
func (a *Arena) PlayerUseSkill() (*TurnResult, error) {
	return a.playTurn(func() string {
		return a.player.UseSkill(a.enemy)
	})
}

// NextTurn passes the player's action; only the enemy acts
func (a *Arena) NextTurn() (*TurnResult, error) {
	return a.playTurn(nil)
}

// BattleResult returns the terminal summary without changing anything
func (a *Arena) BattleResult() (*BattleResult, error) {
	if a.state != StateEnded {
		return nil, errors.FailedPreconditionf("battle is %s, no result yet", a.state)
	}

	result := *a.result
	return &result, nil
}

// playTurn runs one compound turn. The enemy never acts once it is defeated
// and nothing mutates after the turn that ends the battle.
func (a *Arena) playTurn(playerAction func() string) (*TurnResult, error) {
	switch a.state {
	case StateNotStarted:
		return nil, errors.FailedPrecondition("battle has not started")
	case StateEnded:
		return a.terminalTurn(), nil
	}

	a.turns++

	var messages []string
	if playerAction != nil {
		messages = append(messages, playerAction())
		if a.checkEnd() {
			return a.finishTurn(messages), nil
		}
	}

	messages = append(messages, a.enemy.Hit(a.player))
	if !a.checkEnd() {
		a.regenerate()
	}

	return a.finishTurn(messages), nil
}

// checkEnd recomputes the running flag from both health pools
func (a *Arena) checkEnd() bool {
	playerDown := a.player.IsDefeated()
	enemyDown := a.enemy.IsDefeated()
	if !playerDown && !enemyDown {
		return false
	}

	result := &BattleResult{Turns: a.turns}
	switch {
	case playerDown && enemyDown:
		result.Outcome = OutcomeDraw
		result.Message = "The battle ended in a draw."
	case enemyDown:
		result.Outcome = OutcomePlayerWon
		result.Winner = a.player.Name()
		result.Message = fmt.Sprintf("%s won the battle.", a.player.Name())
	default:
		result.Outcome = OutcomeEnemyWon
		result.Winner = a.enemy.Name()
		result.Message = fmt.Sprintf("%s lost the battle.", a.player.Name())
	}

	a.state = StateEnded
	a.result = result
	return true
}

func (a *Arena) regenerate() {
	if a.staminaRegen == 0 {
		return
	}
	a.player.Regenerate(a.staminaRegen)
	a.enemy.Regenerate(a.staminaRegen)
}

func (a *Arena) finishTurn(messages []string) *TurnResult {
	if a.state == StateEnded {
		messages = append(messages, a.result.Message)
	}
	a.log = append(a.log, messages...)

	result := &TurnResult{
		Messages:    messages,
		Player:      snapshot(a.player),
		Enemy:       snapshot(a.enemy),
		BattleEnded: a.state == StateEnded,
	}
	if a.result != nil {
		result.Outcome = a.result.Outcome
		result.Winner = a.result.Winner
	}
	return result
}

// terminalTurn answers actions after the end with the same summary
func (a *Arena) terminalTurn() *TurnResult {
	return &TurnResult{
		Messages:    []string{a.result.Message},
		Player:      snapshot(a.player),
		Enemy:       snapshot(a.enemy),
		BattleEnded: true,
		Outcome:     a.result.Outcome,
		Winner:      a.result.Winner,
	}
}

func snapshot(c *combat.Combatant) Snapshot {
	return Snapshot{
		Name:    c.Name(),
		Health:  c.Health(),
		Stamina: c.Stamina(),
	}
}
