package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"appcatalog/internal/application/commands"
)

var settingsUser int

var settingsCmd = &cobra.Command{
	Use:   "settings <package>",
	Short: "Resolve the activity that opens an app's settings",
	Long: `Resolve the module settings activity of a package, falling back to its
launcher activity, and print the am start command that opens it.

Examples:
  appcatalog-cli settings org.example.module
  appcatalog-cli settings org.example.module --user 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		intent, err := commands.NewResolveSettingsCommand(GetEngine(), args[0], settingsUser).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("component: %s\n", intent.Component())
		fmt.Printf("category:  %s\n", intent.Category)
		fmt.Printf("am %s\n", strings.Join(intent.AmStartArgs(settingsUser), " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().IntVarP(&settingsUser, "user", "u", 0, "user profile the app is installed for")
}
