package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeCommand = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into tokens (placeholder output only)",
	Long: `Encode text into tokens.

Tokenization is not implemented. The output is always a fixed number of
empty placeholder tokens, and no request is made.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{"offline": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := client.Encode(args[0])

		fmt.Fprintf(cmd.OutOrStdout(), "%s placeholder tokens\n", numberColor.Render(fmt.Sprint(len(tokens))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCommand)
}
