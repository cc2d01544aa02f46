package main

import (
	"fmt"
	"os"

	"github.com/aretw0/relay/internal/cli"
	"github.com/aretw0/relay/internal/config"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the bundled people flow",
	Long:  `Loads the people list, presents the first person, edits it through the detail presentor and reloads the list.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		metrics, _ := cmd.Flags().GetBool("metrics")
		mode, _ := cmd.Flags().GetString("mode")
		trace, _ := cmd.Flags().GetBool("trace")
		quiet, _ := cmd.Flags().GetBool("quiet")

		opts := cli.DemoOptions{
			ConfigPath: configPath,
			Debug:      debug,
			Metrics:    metrics,
			Mode:       mode,
			Trace:      trace,
			Quiet:      quiet,
		}
		if err := cli.RunDemo(opts, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	demoCmd.Flags().Bool("debug", false, "Log every dispatch step to stderr")
	demoCmd.Flags().Bool("metrics", false, "Print prometheus counters after the run")
	demoCmd.Flags().String("mode", "present", "Delivery mode of the detail request (present, push, modal)")
	demoCmd.Flags().Bool("trace", false, "Print the dispatch trace after the run")
	demoCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
