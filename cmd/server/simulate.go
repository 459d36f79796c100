package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

var (
	simPlayer   battle.FighterSpec
	simEnemy    battle.FighterSpec
	simSeed     uint64
	simMaxTurns int
	simSkillAt  int
	simRegen    float64
	simCatalog  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a battle locally without a server",
	Long: `Simulate plays a whole battle in-process. The player attacks every turn,
uses its skill on the chosen turn, and passes once it is out of stamina.`,
	RunE: runSimulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.StringVar(&simPlayer.Name, "player", "Hero", "Player name")
	flags.StringVar(&simPlayer.Class, "player-class", "Warrior", "Player class")
	flags.StringVar(&simPlayer.Weapon, "player-weapon", "Axe", "Player weapon")
	flags.StringVar(&simPlayer.Armor, "player-armor", "Chainmail", "Player armor")
	flags.StringVar(&simEnemy.Name, "enemy", "Goblin", "Enemy name")
	flags.StringVar(&simEnemy.Class, "enemy-class", "Thief", "Enemy class")
	flags.StringVar(&simEnemy.Weapon, "enemy-weapon", "Knife", "Enemy weapon")
	flags.StringVar(&simEnemy.Armor, "enemy-armor", "Leather", "Enemy armor")
	flags.Uint64Var(&simSeed, "seed", 0, "Seed for the enemy's dice, unset rolls randomly")
	flags.IntVar(&simMaxTurns, "max-turns", 100, "Give up after this many turns")
	flags.IntVar(&simSkillAt, "skill-turn", 1, "Turn on which the player uses its skill, 0 never")
	flags.Float64Var(&simRegen, "stamina-regen", 0, "Stamina restored to both sides after every turn")
	flags.StringVar(&simCatalog, "catalog", "", "Path to a YAML catalog, empty uses the built-in one")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultServer()
	cfg.CatalogPath = simCatalog
	cfg.Battle.StaminaRegen = simRegen
	if cmd.Flags().Changed("seed") {
		cfg.Battle.Seed = &simSeed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if simMaxTurns <= 0 {
		return fmt.Errorf("max-turns must be positive")
	}

	deps, err := buildDependencies(&cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	svc, err := newBattleService(&cfg, deps, idgen.NewSequential("sim"))
	if err != nil {
		return fmt.Errorf("failed to create battle service: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	started, err := svc.StartBattle(ctx, &battle.StartBattleInput{Player: simPlayer, Enemy: simEnemy})
	if err != nil {
		return fmt.Errorf("failed to start battle: %w", err)
	}
	for _, msg := range started.Messages {
		fmt.Println(msg)
	}

	input := &battle.ActionInput{BattleID: started.BattleID}
	running := started.Running
	staminaLeft := started.Player.Stamina > 0

	for turn := 1; running && turn <= simMaxTurns; turn++ {
		var out *battle.ActionOutput
		switch {
		case turn == simSkillAt:
			out, err = svc.PlayerUseSkill(ctx, input)
		case staminaLeft:
			out, err = svc.PlayerHit(ctx, input)
		default:
			out, err = svc.PassTurn(ctx, input)
		}
		if err != nil {
			return fmt.Errorf("turn %d failed: %w", turn, err)
		}

		fmt.Printf("[%d] %s\n", turn, out.Turn.Message())
		fmt.Printf("    %s %.1f hp %.1f st | %s %.1f hp %.1f st\n",
			out.Turn.Player.Name, out.Turn.Player.Health, out.Turn.Player.Stamina,
			out.Turn.Enemy.Name, out.Turn.Enemy.Health, out.Turn.Enemy.Stamina)

		running = !out.Turn.BattleEnded
		staminaLeft = out.Turn.Player.Stamina > 0
	}

	if running {
		fmt.Printf("No winner after %d turns, ending the battle.\n", simMaxTurns)
		_, err := svc.EndBattle(ctx, &battle.EndBattleInput{BattleID: started.BattleID})
		return err
	}

	result, err := svc.GetBattleResult(ctx, &battle.GetBattleResultInput{BattleID: started.BattleID})
	if err != nil {
		return fmt.Errorf("failed to read result: %w", err)
	}
	fmt.Printf("\n%s (%s after %d turns)\n", result.Result.Message, result.Result.Outcome, result.Result.Turns)
	return nil
}
