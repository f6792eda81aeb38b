package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"appcatalog/internal/application"
	"appcatalog/internal/application/commands"
)

var sortCmd = &cobra.Command{
	Use:   "sort [order]",
	Short: "Show or save the app list sort order",
	Long: `Without arguments prints the saved sort order. With an order saves it.

Orders: name, name_desc, package_name, package_name_desc, install_time,
install_time_desc, update_time, update_time_desc.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		engine := GetEngine()

		if len(args) == 0 {
			fmt.Println(engine.Sort.Current(ctx))
			return nil
		}

		result, err := commands.NewSetSortCommand(engine, application.ParseSortAction(args[0])).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
