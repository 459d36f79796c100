package arena_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/arena"
	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type ArenaTestSuite struct {
	suite.Suite
	arena *arena.Arena
}

func TestArenaSuite(t *testing.T) {
	suite.Run(t, new(ArenaTestSuite))
}

func (s *ArenaTestSuite) SetupTest() {
	var err error
	s.arena, err = arena.New(nil)
	s.Require().NoError(err)
}

func (s *ArenaTestSuite) player(opts *testutils.CombatantOptions) *combat.Combatant {
	return testutils.CreateTestCombatant(s.T(), "Hero", combat.KindPlayer, opts)
}

func (s *ArenaTestSuite) enemy(opts *testutils.CombatantOptions) *combat.Combatant {
	return testutils.CreateTestCombatant(s.T(), "Orc", combat.KindEnemy, opts)
}

func (s *ArenaTestSuite) TestNew_RejectsNegativeRegen() {
	_, err := arena.New(&arena.Config{StaminaRegen: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ArenaTestSuite) TestActionsBeforeStart() {
	s.Equal(arena.StateNotStarted, s.arena.State())
	s.False(s.arena.GameIsRunning())

	_, err := s.arena.PlayerHit()
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.arena.PlayerUseSkill()
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.arena.NextTurn()
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.arena.BattleResult()
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ArenaTestSuite) TestStartGame_RequiresEquippedCombatants() {
	err := s.arena.StartGame(nil, s.enemy(nil))
	s.True(errors.IsFailedPrecondition(err))

	bare := s.enemy(&testutils.CombatantOptions{Unequipped: true})
	err = s.arena.StartGame(s.player(nil), bare)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("enemy-Orc", errors.GetMeta(err)["combatant_id"])
	s.Equal(arena.StateNotStarted, s.arena.State())
}

func (s *ArenaTestSuite) TestPlayerHit_BothSidesAct() {
	player := s.player(nil)
	enemy := s.enemy(nil)
	s.Require().NoError(s.arena.StartGame(player, enemy))
	s.True(s.arena.GameIsRunning())

	result, err := s.arena.PlayerHit()
	s.Require().NoError(err)

	s.Equal([]string{
		"Hero using Sword pierces the opponent's Mail and deals 3 damage.",
		"Orc using Sword pierces the opponent's Mail and deals 3 damage.",
	}, result.Messages)
	s.False(result.BattleEnded)
	s.Equal(arena.OutcomeNone, result.Outcome)
	s.Empty(result.Winner)
	// each side paid 2 to swing and 1 to guard
	s.Equal(arena.Snapshot{Name: "Hero", Health: 97, Stamina: 47}, result.Player)
	s.Equal(arena.Snapshot{Name: "Orc", Health: 97, Stamina: 47}, result.Enemy)
	s.Equal(1, s.arena.Turns())
	s.True(s.arena.GameIsRunning())
}

func (s *ArenaTestSuite) TestPlayerHit_LethalHitShortCircuitsEnemyReply() {
	fragile := testutils.CreateTestClass("Glass")
	fragile.MaxHealth = 3

	player := s.player(nil)
	enemy := s.enemy(&testutils.CombatantOptions{Class: fragile})
	s.Require().NoError(s.arena.StartGame(player, enemy))

	result, err := s.arena.PlayerHit()
	s.Require().NoError(err)

	// 5 raw - 2 armor = 3 leaves the enemy at exactly zero
	s.True(enemy.IsDefeated())
	s.True(result.BattleEnded)
	s.Equal(arena.OutcomePlayerWon, result.Outcome)
	s.Equal("Hero", result.Winner)
	s.Equal([]string{
		"Hero using Sword pierces the opponent's Mail and deals 3 damage.",
		"Hero won the battle.",
	}, result.Messages)
	s.Equal(100.0, player.Health(), "the enemy never acts from beyond defeat")
	s.Equal(48.0, player.Stamina())
	s.False(s.arena.GameIsRunning())
	s.Equal(arena.StateEnded, s.arena.State())
}

func (s *ArenaTestSuite) TestPlayerHit_EnemyReplyDefeatsPlayer() {
	fragile := testutils.CreateTestClass("Glass")
	fragile.MaxHealth = 2

	player := s.player(&testutils.CombatantOptions{Class: fragile})
	enemy := s.enemy(nil)
	s.Require().NoError(s.arena.StartGame(player, enemy))

	result, err := s.arena.PlayerHit()
	s.Require().NoError(err)

	s.True(result.BattleEnded)
	s.Equal(arena.OutcomeEnemyWon, result.Outcome)
	s.Equal("Orc", result.Winner)
	s.Len(result.Messages, 3)
	s.Equal("Hero lost the battle.", result.Messages[2])
	s.Equal(0.0, result.Player.Health)
	s.Equal(97.0, result.Enemy.Health)
}

func (s *ArenaTestSuite) TestPlayerUseSkill_ThenEnemyReplies() {
	player := s.player(nil)
	enemy := s.enemy(nil)
	s.Require().NoError(s.arena.StartGame(player, enemy))

	result, err := s.arena.PlayerUseSkill()
	s.Require().NoError(err)

	s.Equal("Hero uses Test Blast and deals 10 damage to the opponent.", result.Messages[0])
	s.Len(result.Messages, 2)
	s.Equal(90.0, result.Enemy.Health)
	s.True(player.SkillUsed())

	result, err = s.arena.PlayerUseSkill()
	s.Require().NoError(err)
	s.Equal("Skill already used.", result.Messages[0])
	s.Equal(90.0, result.Enemy.Health)
	s.Equal(2, s.arena.Turns())
}

func (s *ArenaTestSuite) TestPlayerUseSkill_LethalSkillWins() {
	fragile := testutils.CreateTestClass("Glass")
	fragile.MaxHealth = 10

	s.Require().NoError(s.arena.StartGame(s.player(nil), s.enemy(&testutils.CombatantOptions{Class: fragile})))

	result, err := s.arena.PlayerUseSkill()
	s.Require().NoError(err)

	s.True(result.BattleEnded)
	s.Equal(arena.OutcomePlayerWon, result.Outcome)
	s.Len(result.Messages, 2)
}

func (s *ArenaTestSuite) TestNextTurn_OnlyEnemyActs() {
	player := s.player(nil)
	enemy := s.enemy(nil)
	s.Require().NoError(s.arena.StartGame(player, enemy))

	result, err := s.arena.NextTurn()
	s.Require().NoError(err)

	s.Equal([]string{"Orc using Sword pierces the opponent's Mail and deals 3 damage."}, result.Messages)
	s.Equal(arena.Snapshot{Name: "Hero", Health: 97, Stamina: 49}, result.Player)
	s.Equal(arena.Snapshot{Name: "Orc", Health: 100, Stamina: 48}, result.Enemy)
}

func (s *ArenaTestSuite) TestNextTurn_CanEndBattle() {
	fragile := testutils.CreateTestClass("Glass")
	fragile.MaxHealth = 3

	s.Require().NoError(s.arena.StartGame(s.player(&testutils.CombatantOptions{Class: fragile}), s.enemy(nil)))

	result, err := s.arena.NextTurn()
	s.Require().NoError(err)

	s.True(result.BattleEnded)
	s.Equal(arena.OutcomeEnemyWon, result.Outcome)
}

func (s *ArenaTestSuite) TestActionsAfterEndAreNoOps() {
	fragile := testutils.CreateTestClass("Glass")
	fragile.MaxHealth = 3

	player := s.player(nil)
	enemy := s.enemy(&testutils.CombatantOptions{Class: fragile})
	s.Require().NoError(s.arena.StartGame(player, enemy))

	_, err := s.arena.PlayerHit()
	s.Require().NoError(err)

	before := []float64{player.Health(), player.Stamina(), enemy.Health(), enemy.Stamina()}
	logLen := len(s.arena.Log())

	for _, action := range []func() (*arena.TurnResult, error){
		s.arena.PlayerHit, s.arena.PlayerUseSkill, s.arena.NextTurn,
	} {
		result, err := action()
		s.Require().NoError(err)
		s.True(result.BattleEnded)
		s.Equal(arena.OutcomePlayerWon, result.Outcome)
		s.Equal([]string{"Hero won the battle."}, result.Messages)
	}

	s.Equal(before, []float64{player.Health(), player.Stamina(), enemy.Health(), enemy.Stamina()})
	s.False(player.SkillUsed())
	s.Equal(1, s.arena.Turns())
	s.Len(s.arena.Log(), logLen)

	summary, err := s.arena.BattleResult()
	s.Require().NoError(err)
	s.Equal(&arena.BattleResult{
		Outcome: arena.OutcomePlayerWon,
		Winner:  "Hero",
		Message: "Hero won the battle.",
		Turns:   1,
	}, summary)
}

func (s *ArenaTestSuite) TestBattleResult_WhileRunning() {
	s.Require().NoError(s.arena.StartGame(s.player(nil), s.enemy(nil)))

	_, err := s.arena.BattleResult()
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ArenaTestSuite) TestStartGame_BothAlreadyDownIsDraw() {
	player := s.player(nil)
	enemy := s.enemy(nil)
	player.GetDamage(200)
	enemy.GetDamage(100)

	s.Require().NoError(s.arena.StartGame(player, enemy))

	s.False(s.arena.GameIsRunning())
	summary, err := s.arena.BattleResult()
	s.Require().NoError(err)
	s.Equal(arena.OutcomeDraw, summary.Outcome)
	s.Empty(summary.Winner)
	s.Equal("The battle ended in a draw.", summary.Message)
	s.Equal(0, summary.Turns)
}

func (s *ArenaTestSuite) TestStartGame_RestartsCleanly() {
	fragile := testutils.CreateTestClass("Glass")
	fragile.MaxHealth = 3
	s.Require().NoError(s.arena.StartGame(s.player(nil), s.enemy(&testutils.CombatantOptions{Class: fragile})))
	_, err := s.arena.PlayerHit()
	s.Require().NoError(err)
	s.Equal(arena.StateEnded, s.arena.State())

	s.Require().NoError(s.arena.StartGame(s.player(nil), s.enemy(nil)))

	s.True(s.arena.GameIsRunning())
	s.Equal(0, s.arena.Turns())
	s.Empty(s.arena.Log())
}

func (s *ArenaTestSuite) TestLog_KeepsEveryMessageInOrder() {
	s.Require().NoError(s.arena.StartGame(s.player(nil), s.enemy(nil)))

	_, err := s.arena.PlayerHit()
	s.Require().NoError(err)
	_, err = s.arena.NextTurn()
	s.Require().NoError(err)

	log := s.arena.Log()
	s.Len(log, 3)
	s.Contains(log[0], "Hero using Sword")
	s.Contains(log[1], "Orc using Sword")
	s.Contains(log[2], "Orc using Sword")
}

func (s *ArenaTestSuite) TestStaminaRegen_AfterRunningTurns() {
	a, err := arena.New(&arena.Config{StaminaRegen: 1})
	s.Require().NoError(err)

	player := s.player(nil)
	enemy := s.enemy(nil)
	s.Require().NoError(a.StartGame(player, enemy))

	result, err := a.PlayerHit()
	s.Require().NoError(err)

	// 50 - 2 swing - 1 guard + 1 regen
	s.Equal(48.0, result.Player.Stamina)
	s.Equal(48.0, result.Enemy.Stamina)
}

func (s *ArenaTestSuite) TestFullBattleTerminates() {
	// enough stamina that neither side runs dry before someone falls
	tireless := testutils.CreateTestClass("Tireless")
	tireless.MaxStamina = 1000

	s.Require().NoError(s.arena.StartGame(
		s.player(&testutils.CombatantOptions{Class: tireless}),
		s.enemy(&testutils.CombatantOptions{Class: tireless}),
	))

	var result *arena.TurnResult
	var err error
	for i := 0; i < 200 && s.arena.GameIsRunning(); i++ {
		result, err = s.arena.PlayerHit()
		s.Require().NoError(err)
	}

	s.Require().NotNil(result)
	s.True(result.BattleEnded)
	s.False(s.arena.GameIsRunning())
	// the player always strikes first with identical gear, so the enemy falls first
	s.Equal(arena.OutcomePlayerWon, result.Outcome)
	s.Equal(34, s.arena.Turns())
}

func (s *ArenaTestSuite) TestExhaustedCombatantsStall() {
	s.Require().NoError(s.arena.StartGame(s.player(nil), s.enemy(nil)))

	for i := 0; i < 20; i++ {
		_, err := s.arena.PlayerHit()
		s.Require().NoError(err)
	}

	// both sides ran out of stamina after 17 turns and can no longer swing
	result, err := s.arena.PlayerHit()
	s.Require().NoError(err)
	s.True(s.arena.GameIsRunning())
	s.Equal([]string{
		"Hero tried to use Sword but did not have enough stamina.",
		"Orc tried to use Sword but did not have enough stamina.",
	}, result.Messages)
	s.Equal(arena.Snapshot{Name: "Hero", Health: 52, Stamina: 0}, result.Player)
	s.Equal(arena.Snapshot{Name: "Orc", Health: 49, Stamina: 1}, result.Enemy)
}
