package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"appcatalog/internal/application/commands"
	"appcatalog/internal/domain"
)

var (
	listRefresh       bool
	listUser          int
	listSort          string
	listInstalledOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List apps in the saved sort order",
	Long: `List installed apps across all user profiles.

Examples:
  appcatalog-cli list
  appcatalog-cli list --user 10
  appcatalog-cli list --sort update_time_desc --refresh`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		list := commands.NewListAppsCommand(GetEngine())
		list.Refresh = listRefresh
		list.UserID = listUser
		list.IncludeUninstalled = !listInstalledOnly
		if listSort != "" {
			mode, ok := domain.ParseSortMode(listSort)
			if !ok {
				return fmt.Errorf("unknown sort %q, expected one of: %s", listSort, commands.SortActionNames())
			}
			list.Mode = &mode
		}

		result, err := list.Execute(ctx)
		if err != nil {
			return err
		}
		if result.FetchErr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", result.FetchErr)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PACKAGE\tLABEL\tUSER\tINSTALLED\tUPDATED\t")
		for _, a := range result.Apps {
			state := ""
			if a.Uninstalled {
				state = "uninstalled"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
				a.PackageName, a.Label, a.UserID,
				formatMillis(a.FirstInstallTime), formatMillis(a.LastUpdateTime), state)
		}
		return w.Flush()
	},
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listRefresh, "refresh", "r", false, "re-read the registry")
	listCmd.Flags().IntVarP(&listUser, "user", "u", commands.AllUsers, "only list apps of this user profile")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "override the saved sort order")
	listCmd.Flags().BoolVar(&listInstalledOnly, "installed-only", false, "hide uninstalled packages kept with data")
}
