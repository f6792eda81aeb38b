package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"appcatalog/internal/adapters/snapshot"
)

var importMerge bool

var importCmd = &cobra.Command{
	Use:   "import <snapshot.yaml>",
	Short: "Load a device registry snapshot",
	Long: `Load users, packages and activities from a YAML registry snapshot.
The registry is replaced unless --merge is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		snap, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}

		apps, activities := snap.Records()
		if err := rt.Registry.Import(ctx, apps, activities, !importMerge); err != nil {
			return fmt.Errorf("failed to import snapshot: %w", err)
		}

		fmt.Printf("Imported %d packages and %d activity entries across %d users\n", len(apps), len(activities), len(snap.Users))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "keep existing registry entries")
}
