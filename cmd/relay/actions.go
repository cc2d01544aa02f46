package main

import (
	"fmt"
	"os"

	"github.com/aretw0/relay/internal/cli"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Print the action catalog",
	Long:  `Lists the bundled actions with their payload types and error channels, or exports them as a Mermaid diagram (graph TD).`,
	Run: func(cmd *cobra.Command, args []string) {
		graph, _ := cmd.Flags().GetBool("graph")
		raw, _ := cmd.Flags().GetBool("raw")
		width, _ := cmd.Flags().GetInt("width")

		if err := cli.RunActions(cli.ActionsOptions{Graph: graph, Raw: raw, Width: width}, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().Bool("graph", false, "Export the action flows as Mermaid")
	actionsCmd.Flags().Bool("raw", false, "Print markdown without rendering")
	actionsCmd.Flags().Int("width", 100, "Word wrap width of the rendered table")
}
