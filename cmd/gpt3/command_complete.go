package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/picatz/gpt3"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var completeCommand = &cobra.Command{
	Use:   "complete [prompt]",
	Short: "Complete a prompt, or every line of a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		engine, _ := flags.GetString("engine")
		maxTokens, _ := flags.GetInt("max-tokens")
		n, _ := flags.GetInt("n")
		stop, _ := flags.GetStringArray("stop")
		file, _ := flags.GetString("file")
		perSecond, _ := flags.GetFloat64("rate")

		base := gpt3.CompletionRequest{
			Engine:    cmp.Or(engine, os.Getenv("GPT3_ENGINE")),
			MaxTokens: maxTokens,
			N:         n,
			Stop:      stop,
		}
		if flags.Changed("temperature") {
			v, _ := flags.GetFloat64("temperature")
			base.Temperature = gpt3.Float64(v)
		}
		if flags.Changed("top-p") {
			v, _ := flags.GetFloat64("top-p")
			base.TopP = gpt3.Float64(v)
		}

		var prompts []string
		switch {
		case file != "":
			lines, err := readLines(file)
			if err != nil {
				return err
			}
			prompts = lines
		case len(args) == 1:
			prompts = []string{args[0]}
		default:
			return errors.New("a prompt or --file is required")
		}

		ctx := cmd.Context()

		// Requests are started at the given rate, and run concurrently.
		limiter := rate.NewLimiter(rate.Inf, 1)
		if perSecond > 0 {
			limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}

		futures := make([]*gpt3.Future[*gpt3.Response], 0, len(prompts))
		for _, prompt := range prompts {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			req := base
			req.Prompt = []string{prompt}

			futures = append(futures, gpt3.Go(ctx, func(ctx context.Context) (*gpt3.Response, error) {
				return client.Complete(ctx, &req)
			}))
		}

		raw, _ := flags.GetBool("raw")
		out := cmd.OutOrStdout()

		for i, f := range futures {
			resp, err := f.Wait(ctx)
			if err != nil {
				return fmt.Errorf("prompt %d: %w", i+1, err)
			}

			if raw {
				if err := printJSON(out, resp.Body); err != nil {
					return err
				}
				continue
			}

			var completion gpt3.CompletionResponse
			if err := resp.Decode(&completion); err != nil {
				return err
			}

			if len(prompts) > 1 {
				fmt.Fprintln(out, numberColor.Render(fmt.Sprintf("%d.", i+1)), styleFaint.Render(prompts[i]))
			}

			for _, choice := range completion.Choices {
				if err := printText(out, choice.Text); err != nil {
					return err
				}
			}
		}

		return nil
	},
}

// readLines returns the non-empty lines of the named file.
func readLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}

	return lines, nil
}

func init() {
	completeCommand.Flags().StringP("engine", "e", "", "engine to use (defaults to $GPT3_ENGINE, or "+gpt3.DefaultEngine+")")
	completeCommand.Flags().Int("max-tokens", 64, "maximum number of tokens to generate")
	completeCommand.Flags().Float64("temperature", 0, "sampling temperature")
	completeCommand.Flags().Float64("top-p", 0, "nucleus sampling probability mass")
	completeCommand.Flags().Int("n", 0, "number of completions per prompt")
	completeCommand.Flags().StringArray("stop", nil, "sequence where generation stops (repeatable)")
	completeCommand.Flags().StringP("file", "f", "", "file with one prompt per line")
	completeCommand.Flags().Float64("rate", 0, "maximum requests started per second (0 is unlimited)")

	rootCmd.AddCommand(completeCommand)
}
