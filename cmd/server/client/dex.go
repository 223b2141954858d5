package client

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/celala99/cela-geo-quest/internal/handlers/geoquest/v1alpha1"
)

var resetDex bool

var dexCmd = &cobra.Command{
	Use:   "dex [player-id]",
	Short: "Show or reset a player's Dex",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		req := map[string]any{v1alpha1.FieldPlayerID: args[0]}

		if resetDex {
			resp, err := call(v1alpha1.MethodResetDex, req)
			if err != nil {
				return fmt.Errorf("failed to reset dex: %w", err)
			}
			fmt.Printf("Removed %v captures.\n", resp["removed"])
			return nil
		}

		resp, err := call(v1alpha1.MethodGetDex, req)
		if err != nil {
			return fmt.Errorf("failed to get dex: %w", err)
		}

		entries, _ := resp["entries"].([]any)
		fmt.Printf("%s has captured %d regions:\n", args[0], len(entries))
		for _, e := range entries {
			entry, _ := e.(map[string]any)
			fmt.Printf("  %-12v %s\n", entry["region_id"], capturedAgo(entry["captured_at"]))
		}
		return nil
	},
}

func init() {
	dexCmd.Flags().BoolVar(&resetDex, "reset", false, "Clear the Dex instead of listing it")
}

func capturedAgo(v any) string {
	s, _ := v.(string)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return humanize.Time(t)
}
