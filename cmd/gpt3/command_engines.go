package main

import (
	"fmt"

	"github.com/picatz/gpt3"
	"github.com/spf13/cobra"
)

var enginesCommand = &cobra.Command{
	Use:   "engines",
	Short: "List available engines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.Engines(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			return printJSON(out, resp.Body)
		}

		var engines gpt3.EngineList
		if err := resp.Decode(&engines); err != nil {
			return err
		}

		for _, engine := range engines.Data {
			printEngine(cmd, engine)
		}

		return nil
	},
}

var engineCommand = &cobra.Command{
	Use:   "engine <id>",
	Short: "Show a single engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.Engine(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			return printJSON(cmd.OutOrStdout(), resp.Body)
		}

		var engine gpt3.EngineInfo
		if err := resp.Decode(&engine); err != nil {
			return err
		}

		printEngine(cmd, engine)
		return nil
	},
}

func printEngine(cmd *cobra.Command, engine gpt3.EngineInfo) {
	ready := styleOK.Render("ready")
	if !engine.Ready {
		ready = styleWarning.Render("not ready")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", styleBold.Render(engine.ID), styleFaint.Render(engine.Owner), ready)
}

func init() {
	rootCmd.AddCommand(enginesCommand)
	rootCmd.AddCommand(engineCommand)
}
