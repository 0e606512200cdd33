package main

import (
	"errors"
	"fmt"

	"github.com/picatz/gpt3"
	"github.com/spf13/cobra"
)

var classifyCommand = &cobra.Command{
	Use:   "classify <query>",
	Short: "Label a query using labeled examples",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		model, _ := flags.GetString("model")
		searchModel, _ := flags.GetString("search-model")
		file, _ := flags.GetString("file-id")
		labels, _ := flags.GetStringArray("label")
		rawExamples, _ := flags.GetStringArray("example")

		if len(rawExamples) == 0 && file == "" {
			return errors.New("at least one --example, or a --file-id, is required")
		}

		examples, err := parseExamples(rawExamples)
		if err != nil {
			return err
		}

		req := &gpt3.ClassificationRequest{
			Model:       model,
			Query:       args[0],
			Examples:    examples,
			File:        file,
			Labels:      labels,
			SearchModel: searchModel,
		}
		if flags.Changed("temperature") {
			v, _ := flags.GetFloat64("temperature")
			req.Temperature = gpt3.Float64(v)
		}

		resp, err := client.Classification(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if raw, _ := flags.GetBool("raw"); raw {
			return printJSON(out, resp.Body)
		}

		var result gpt3.ClassificationResponse
		if err := resp.Decode(&result); err != nil {
			return err
		}

		fmt.Fprintln(out, styleBold.Render(result.Label))

		for _, e := range result.SelectedExamples {
			fmt.Fprintln(out, styleFaint.Render(fmt.Sprintf("%s: %s", e.Label, e.Text)))
		}

		return nil
	},
}

func init() {
	classifyCommand.Flags().String("model", gpt3.EngineCurie, "engine that picks the label")
	classifyCommand.Flags().String("search-model", gpt3.EngineAda, "engine that searches the examples")
	classifyCommand.Flags().String("file-id", "", "uploaded file of labeled examples")
	classifyCommand.Flags().StringArray("label", nil, "allowed label (repeatable)")
	classifyCommand.Flags().StringArray("example", nil, `example of the form "text|label" (repeatable)`)
	classifyCommand.Flags().Float64("temperature", 0, "sampling temperature")

	rootCmd.AddCommand(classifyCommand)
}
