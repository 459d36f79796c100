package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var recordsLimit int

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List recently finished battles",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ListRecords(ctx, recordsLimit)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			fmt.Printf("Found %d records:\n\n", len(resp.Records))
			for _, r := range resp.Records {
				fmt.Printf("%s  %s (%s) vs %s (%s)  %s in %d turns\n",
					r.BattleID, r.PlayerName, r.PlayerClass, r.EnemyName, r.EnemyClass, r.Outcome, r.Turns)
			}
			return nil
		})
	},
}

var recordCmd = &cobra.Command{
	Use:   "record [battle_id]",
	Short: "Show the stored record of a finished battle",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.GetRecord(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}
			return printJSON(resp)
		})
	},
}

func init() {
	recordsCmd.Flags().IntVar(&recordsLimit, "limit", 10, "Maximum number of records")
}
