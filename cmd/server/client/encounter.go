package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/celala99/cela-geo-quest/internal/handlers/geoquest/v1alpha1"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions of the loaded dataset",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodListRegions, map[string]any{})
		if err != nil {
			return fmt.Errorf("failed to list regions: %w", err)
		}

		regions, _ := resp["regions"].([]any)
		fmt.Printf("Found %d regions:\n", len(regions))
		for _, r := range regions {
			region, _ := r.(map[string]any)
			fmt.Printf("  %-12v %-20v difficulty %v, %v quizzes\n",
				region["region_id"], region["name"], region["difficulty"], region["quiz_count"])
		}
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start [player-id] [region-id]",
	Short: "Start an encounter",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodStartEncounter, map[string]any{
			v1alpha1.FieldPlayerID: args[0],
			v1alpha1.FieldRegionID: args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to start encounter: %w", err)
		}
		printEncounter(resp)
		return nil
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer [player-id] [choice]",
	Short: "Answer the current quiz (choice 0-3)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		choice, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("choice must be a number: %w", err)
		}

		resp, err := call(v1alpha1.MethodSubmitAnswer, map[string]any{
			v1alpha1.FieldPlayerID: args[0],
			v1alpha1.FieldChoice:   choice,
		})
		if err != nil {
			return fmt.Errorf("failed to submit answer: %w", err)
		}
		printEncounter(resp)
		return nil
	},
}

var encounterCmd = &cobra.Command{
	Use:   "encounter [player-id]",
	Short: "Show the active encounter",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodGetEncounter, map[string]any{v1alpha1.FieldPlayerID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get encounter: %w", err)
		}
		printEncounter(resp)
		return nil
	},
}

var abandonCmd = &cobra.Command{
	Use:   "abandon [player-id]",
	Short: "Leave the active encounter",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if _, err := call(v1alpha1.MethodAbandonEncounter, map[string]any{v1alpha1.FieldPlayerID: args[0]}); err != nil {
			return fmt.Errorf("failed to abandon encounter: %w", err)
		}
		fmt.Println("Encounter abandoned.")
		return nil
	},
}

func printEncounter(resp map[string]any) {
	enc, _ := resp["encounter"].(map[string]any)
	enemy, _ := enc["enemy"].(map[string]any)

	fmt.Printf("\n%v (%v)\n", enemy["name"], enc["region_id"])
	fmt.Printf("  Enemy HP:  %v/%v\n", enc["enemy_hp"], enc["enemy_max_hp"])
	fmt.Printf("  Player HP: %v/%v\n", enc["player_hp"], enc["player_max_hp"])
	fmt.Printf("  %v\n", enc["last_message"])

	if finished, _ := enc["finished"].(string); finished != "" {
		fmt.Printf("  Result: %s\n", finished)
		return
	}
	if answered, _ := enc["answered"].(bool); answered {
		fmt.Println("  The enemy is about to strike back...")
		return
	}
	if quiz, ok := enc["quiz"].(map[string]any); ok {
		fmt.Printf("\n  %v\n", quiz["question"])
		choices, _ := quiz["choices"].([]any)
		for i, c := range choices {
			fmt.Printf("    [%d] %v\n", i, c)
		}
	}
}
