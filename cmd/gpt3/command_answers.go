package main

import (
	"errors"
	"fmt"

	"github.com/picatz/gpt3"
	"github.com/spf13/cobra"
)

var answersCommand = &cobra.Command{
	Use:   "answers <question>",
	Short: "Answer a question using documents and examples",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		model, _ := flags.GetString("model")
		searchModel, _ := flags.GetString("search-model")
		documents, _ := flags.GetStringArray("document")
		file, _ := flags.GetString("file-id")
		examplesContext, _ := flags.GetString("examples-context")
		rawExamples, _ := flags.GetStringArray("example")
		maxTokens, _ := flags.GetInt("max-tokens")
		stop, _ := flags.GetStringArray("stop")

		if len(rawExamples) == 0 || examplesContext == "" {
			return errors.New("--examples-context and at least one --example are required")
		}

		examples, err := parseExamples(rawExamples)
		if err != nil {
			return err
		}

		req := &gpt3.AnswersRequest{
			Model:           model,
			Question:        args[0],
			Examples:        examples,
			ExamplesContext: examplesContext,
			Documents:       documents,
			File:            file,
			SearchModel:     searchModel,
			MaxTokens:       maxTokens,
			Stop:            stop,
		}
		if flags.Changed("temperature") {
			v, _ := flags.GetFloat64("temperature")
			req.Temperature = gpt3.Float64(v)
		}

		resp, err := client.Answers(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if raw, _ := flags.GetBool("raw"); raw {
			return printJSON(out, resp.Body)
		}

		var result gpt3.AnswersResponse
		if err := resp.Decode(&result); err != nil {
			return err
		}

		for _, answer := range result.Answers {
			if err := printText(out, answer); err != nil {
				return err
			}
		}

		for _, d := range result.SelectedDocuments {
			fmt.Fprintln(out, styleFaint.Render(fmt.Sprintf("document %d: %s", d.Document, d.Text)))
		}

		return nil
	},
}

func init() {
	answersCommand.Flags().String("model", gpt3.EngineCurie, "engine that completes the answer")
	answersCommand.Flags().String("search-model", gpt3.EngineAda, "engine that searches the documents")
	answersCommand.Flags().StringArrayP("document", "d", nil, "document to draw the answer from (repeatable)")
	answersCommand.Flags().String("file-id", "", "uploaded file to draw the answer from instead of documents")
	answersCommand.Flags().String("examples-context", "", "context the examples are answered from")
	answersCommand.Flags().StringArray("example", nil, `example of the form "question|answer" (repeatable)`)
	answersCommand.Flags().Int("max-tokens", 16, "maximum number of tokens in the answer")
	answersCommand.Flags().Float64("temperature", 0, "sampling temperature")
	answersCommand.Flags().StringArray("stop", nil, "sequence where generation stops (repeatable)")

	rootCmd.AddCommand(answersCommand)
}
