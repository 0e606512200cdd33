package main

import (
	"errors"
	"fmt"

	"github.com/picatz/gpt3"
	"github.com/picatz/gpt3/embeddings"
	"github.com/spf13/cobra"
)

var embeddingsCommand = &cobra.Command{
	Use:   "embeddings <input>...",
	Short: "Embed inputs, or rank inputs by similarity to the first one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		engine, _ := flags.GetString("engine")
		compare, _ := flags.GetBool("compare")

		if compare && len(args) < 2 {
			return errors.New("--compare needs a query and at least one more input")
		}

		resp, err := client.Embeddings(cmd.Context(), &gpt3.EmbeddingsRequest{
			Engine: engine,
			Input:  args,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if raw, _ := flags.GetBool("raw"); raw {
			return printJSON(out, resp.Body)
		}

		var result gpt3.EmbeddingsResponse
		if err := resp.Decode(&result); err != nil {
			return err
		}

		vectors := embeddings.Vectors(&result)
		if len(vectors) != len(args) {
			return fmt.Errorf("expected %d embeddings, got %d", len(args), len(vectors))
		}

		if !compare {
			for i, v := range vectors {
				fmt.Fprintf(out, "%s %s %s\n", numberColor.Render(fmt.Sprint(i)), styleFaint.Render(fmt.Sprintf("%d dimensions", len(v))), args[i])
			}
			return nil
		}

		matches, err := embeddings.Rank(vectors[0], vectors[1:])
		if err != nil {
			return err
		}

		fmt.Fprintln(out, styleBold.Render(args[0]))
		for _, m := range matches {
			fmt.Fprintf(out, "%s %s\n", numberColor.Render(fmt.Sprintf("%8.4f", m.Score)), args[m.Index+1])
		}

		return nil
	},
}

func init() {
	embeddingsCommand.Flags().StringP("engine", "e", gpt3.EngineTextSimilarityAda001, "embedding engine to use")
	embeddingsCommand.Flags().Bool("compare", false, "rank the other inputs by cosine similarity to the first")

	rootCmd.AddCommand(embeddingsCommand)
}
