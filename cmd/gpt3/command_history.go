package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/picatz/gpt3/internal/history/storage"
	"github.com/spf13/cobra"
)

var historyCommand = &cobra.Command{
	Use:         "history",
	Short:       "List recorded requests, oldest first, or show one by key",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"offline": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if recorder == nil {
			return errors.New("history is disabled")
		}

		flags := cmd.Flags()

		out := cmd.OutOrStdout()

		if key, _ := flags.GetString("key"); key != "" {
			rec, ok, err := recorder.Get(cmd.Context(), key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no record with key %q", key)
			}

			b, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to encode record %s: %w", key, err)
			}
			return printJSON(out, b)
		}

		pageSize, _ := flags.GetInt("page-size")
		pageToken, _ := flags.GetString("page-token")

		var token *string
		if pageToken != "" {
			token = storage.PageToken(pageToken)
		}

		records, next, err := recorder.List(cmd.Context(), storage.PageSize(pageSize), token)
		if err != nil {
			return err
		}

		raw, _ := flags.GetBool("raw")

		for key, rec := range records {
			if raw {
				b, err := json.Marshal(rec)
				if err != nil {
					return fmt.Errorf("failed to encode record %s: %w", key, err)
				}
				fmt.Fprintln(out, string(b))
				continue
			}

			fmt.Fprintf(out, "%s %s %s %s %s %s\n",
				styleFaint.Render(rec.Time.Local().Format(time.DateTime)),
				styleBold.Render(rec.Method),
				rec.URL,
				styleStatus(rec.StatusCode),
				styleFaint.Render(rec.Duration.Round(time.Millisecond).String()),
				styleFaint.Render(key),
			)
			if rec.Error != "" {
				fmt.Fprintln(out, styleWarning.Render("  "+rec.Error))
			}
		}

		if next != nil && !raw {
			fmt.Fprintln(out, styleFaint.Render("next page: --page-token "+*next))
		}

		return nil
	},
}

func init() {
	historyCommand.Flags().Int("page-size", storage.DefaultListPageSize, "number of records per page")
	historyCommand.Flags().String("page-token", "", "key of the first record to list")
	historyCommand.Flags().String("key", "", "show the full record stored under this key")

	rootCmd.AddCommand(historyCommand)
}
