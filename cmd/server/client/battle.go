package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var startReq v1alpha1.StartBattleRequest

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the classes, weapons and armors a fighter can use",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ListCatalog(ctx)
			if err != nil {
				return fmt.Errorf("failed to list catalog: %w", err)
			}

			fmt.Printf("Classes: %s\n", strings.Join(resp.Classes, ", "))
			fmt.Printf("Weapons: %s\n", strings.Join(resp.Weapons, ", "))
			fmt.Printf("Armors:  %s\n", strings.Join(resp.Armors, ", "))
			return nil
		})
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a battle",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.StartBattle(ctx, &startReq)
			if err != nil {
				return fmt.Errorf("failed to start battle: %w", err)
			}

			for _, msg := range resp.Messages {
				fmt.Println(msg)
			}
			printSides(resp.Player, resp.Enemy)

			fmt.Printf("\n# To attack, run:\n")
			fmt.Printf("./bin/rpg-arena client hit %s\n", resp.BattleID)
			return nil
		})
	},
}

var hitCmd = turnCommand("hit", "Attack with the player's weapon", (*v1alpha1.Client).PlayerHit)

var skillCmd = turnCommand("skill", "Use the player's skill", (*v1alpha1.Client).PlayerUseSkill)

var passCmd = turnCommand("pass", "Skip the player's action and let the enemy act", (*v1alpha1.Client).PassTurn)

var resultCmd = &cobra.Command{
	Use:   "result [battle_id]",
	Short: "Show the result of a finished battle",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.GetBattleResult(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get battle result: %w", err)
			}
			return printJSON(resp)
		})
	},
}

var endCmd = &cobra.Command{
	Use:   "end [battle_id]",
	Short: "Discard a battle",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.EndBattle(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to end battle: %w", err)
			}
			if resp.WasRunning {
				fmt.Printf("Battle %s abandoned.\n", resp.BattleID)
			} else {
				fmt.Printf("Battle %s closed.\n", resp.BattleID)
			}
			return nil
		})
	},
}

func init() {
	flags := startCmd.Flags()
	flags.StringVar(&startReq.Player.Name, "player", "Hero", "Player name")
	flags.StringVar(&startReq.Player.Class, "player-class", "Warrior", "Player class")
	flags.StringVar(&startReq.Player.Weapon, "player-weapon", "Axe", "Player weapon")
	flags.StringVar(&startReq.Player.Armor, "player-armor", "Chainmail", "Player armor")
	flags.StringVar(&startReq.Enemy.Name, "enemy", "Goblin", "Enemy name")
	flags.StringVar(&startReq.Enemy.Class, "enemy-class", "Thief", "Enemy class")
	flags.StringVar(&startReq.Enemy.Weapon, "enemy-weapon", "Knife", "Enemy weapon")
	flags.StringVar(&startReq.Enemy.Armor, "enemy-armor", "Leather", "Enemy armor")
}

func turnCommand(
	use, short string,
	action func(*v1alpha1.Client, context.Context, string) (*v1alpha1.TurnResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [battle_id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
				resp, err := action(client, ctx, args[0])
				if err != nil {
					return fmt.Errorf("%s failed: %w", use, err)
				}

				for _, msg := range resp.Messages {
					fmt.Println(msg)
				}
				printSides(resp.Player, resp.Enemy)
				if resp.BattleEnded {
					fmt.Printf("\nBattle over: %s\n", resp.Outcome)
				}
				return nil
			})
		},
	}
}

func printSides(player, enemy v1alpha1.Snapshot) {
	fmt.Printf("  %-12s health %6.1f  stamina %6.1f\n", player.Name, player.Health, player.Stamina)
	fmt.Printf("  %-12s health %6.1f  stamina %6.1f\n", enemy.Name, enemy.Health, enemy.Stamina)
}
