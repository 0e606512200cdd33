package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/picatz/gpt3"
	"github.com/spf13/cobra"
)

var searchCommand = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank documents by how well they match a query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		engine, _ := flags.GetString("engine")
		documents, _ := flags.GetStringArray("document")
		file, _ := flags.GetString("file-id")
		maxRerank, _ := flags.GetInt("max-rerank")

		if len(documents) == 0 && file == "" {
			return errors.New("at least one --document, or a --file-id, is required")
		}

		resp, err := client.Search(cmd.Context(), &gpt3.SearchRequest{
			Engine:         cmp.Or(engine, os.Getenv("GPT3_ENGINE")),
			Query:          args[0],
			Documents:      documents,
			File:           file,
			MaxRerank:      maxRerank,
			ReturnMetadata: file != "",
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if raw, _ := flags.GetBool("raw"); raw {
			return printJSON(out, resp.Body)
		}

		var result gpt3.SearchResponse
		if err := resp.Decode(&result); err != nil {
			return err
		}

		slices.SortStableFunc(result.Data, func(a, b gpt3.SearchResult) int {
			return cmp.Compare(b.Score, a.Score)
		})

		for _, d := range result.Data {
			text := d.Text
			if text == "" && d.Document < len(documents) {
				text = documents[d.Document]
			}
			fmt.Fprintf(out, "%s %s\n", numberColor.Render(fmt.Sprintf("%8.3f", d.Score)), text)
		}

		return nil
	},
}

func init() {
	searchCommand.Flags().StringP("engine", "e", "", "engine to use (defaults to $GPT3_ENGINE, or "+gpt3.DefaultEngine+")")
	searchCommand.Flags().StringArrayP("document", "d", nil, "document to search (repeatable)")
	searchCommand.Flags().String("file-id", "", "uploaded file to search instead of documents")
	searchCommand.Flags().Int("max-rerank", 0, "maximum number of documents to rerank when searching a file")

	rootCmd.AddCommand(searchCommand)
}
