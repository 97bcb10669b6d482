package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"twitterosint/pkg/osint"
	"twitterosint/pkg/ui"
)

// actionsCmd represents the actions command
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List available actions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.SetNoColor(noColor)

		rows := make([][]string, 0, len(osint.All()))
		for _, a := range osint.All() {
			kind := "composite"
			if a.Native() {
				kind = "native"
			}
			rows = append(rows, []string{a.String(), kind, a.Description()})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable([]string{"Action", "Kind", "Description"}, rows))
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
