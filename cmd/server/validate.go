package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/celala99/cela-geo-quest/internal/clients/datasource"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dataset]",
	Short: "Check a dataset file or URL",
	Long: `Load a dataset the way the server does and print what the battle engine
will see after defaults and clamping are applied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := datasource.New(&datasource.Config{Source: args[0], Timeout: cfg.FetchTimeout})
		if err != nil {
			return err
		}
		return describeDataset(cmd.Context(), loader, cmd.OutOrStdout())
	},
}

// describeDataset loads the dataset and prints one line per region
func describeDataset(ctx context.Context, loader datasource.Client, out io.Writer) error {
	ds, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("dataset rejected: %w", err)
	}

	fmt.Fprintf(out, "Dataset version %d with %d regions\n", ds.Version, len(ds.Monsters))
	for _, id := range ds.RegionIDs() {
		c, _ := ds.Creature(id)
		mode := fmt.Sprintf("%d quizzes", len(c.Quizzes))
		if len(c.Quizzes) == 0 {
			mode = "fallback"
		}
		fmt.Fprintf(out, "  %-12s %-20s difficulty %d, hp %d, %s\n", id, c.Name, c.Difficulty, c.HP, mode)
	}
	return nil
}
