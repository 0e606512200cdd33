package main

import (
	"fmt"
	"time"

	"github.com/picatz/gpt3"
	"github.com/spf13/cobra"
)

var filesCommand = &cobra.Command{
	Use:   "files",
	Short: "List uploaded files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.Files(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			return printJSON(out, resp.Body)
		}

		var files gpt3.FileList
		if err := resp.Decode(&files); err != nil {
			return err
		}

		for _, f := range files.Data {
			created := time.Unix(int64(f.CreatedAt), 0).Format(time.DateTime)
			fmt.Fprintf(out, "%s %s %s %s\n",
				styleBold.Render(f.ID),
				f.Filename,
				styleFaint.Render(f.Purpose),
				styleFaint.Render(created),
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(filesCommand)
}
