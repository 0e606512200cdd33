package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/joho/godotenv"
	"github.com/picatz/gpt3"
	"github.com/picatz/gpt3/internal/history"
	"github.com/picatz/gpt3/internal/history/storage"
	pebbleStorage "github.com/picatz/gpt3/internal/history/storage/pebble"
	"github.com/spf13/cobra"
)

var (
	client   *gpt3.Client
	recorder *history.Recorder
	logger   *slog.Logger

	historyBackend *pebbleStorage.Backend[string, history.Record]
)

var rootCmd = &cobra.Command{
	Use:           "gpt3",
	Short:         "GPT-3 engines API CLI",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine, the environment may already be set.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env file: %w", err)
		}

		flags := cmd.Flags()

		level := slog.LevelWarn
		if verbose, _ := flags.GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		apiKeyFlag, _ := flags.GetString("api-key")
		apiKey := cmp.Or(apiKeyFlag, os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" && cmd.Annotations["offline"] == "" {
			return errors.New("OPENAI_API_KEY environment variable is not set")
		}

		orgFlag, _ := flags.GetString("organization")
		baseURLFlag, _ := flags.GetString("base-url")

		httpClient := &http.Client{}

		if noHistory, _ := flags.GetBool("no-history"); !noHistory {
			if err := openHistory(cmd); err != nil {
				return err
			}
			httpClient.Transport = history.NewTransport(http.DefaultTransport, recorder, logger)
		}

		client = gpt3.NewClient(apiKey,
			gpt3.WithHTTPClient(httpClient),
			gpt3.WithOrganization(cmp.Or(orgFlag, os.Getenv("OPENAI_ORGANIZATION"))),
			gpt3.WithBaseURL(cmp.Or(baseURLFlag, os.Getenv("GPT3_BASE_URL"), gpt3.DefaultBaseURL)),
			gpt3.WithLogger(logger),
		)

		return nil
	},
}

// execute runs the CLI, and closes the history afterwards whether or not the
// command succeeded.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)

	if historyBackend != nil {
		err = errors.Join(err, historyBackend.Close(ctx))
		historyBackend, recorder = nil, nil
	}

	return err
}

// openHistory opens the pebble database that records every request.
func openHistory(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("history-path")

	opts := &pebble.Options{
		Logger: pebbleLogger{logger},
	}

	if temporary, _ := cmd.Flags().GetBool("temporary"); temporary {
		opts.FS = vfs.NewMem()
	}

	backend, err := pebbleStorage.NewBackend(path, opts, &storage.JSONCodec[string, history.Record]{})
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	historyBackend = backend
	recorder = history.NewRecorder(backend)

	return nil
}

// pebbleLogger sends pebble's own log lines to the CLI logger at debug level.
type pebbleLogger struct {
	logger *slog.Logger
}

func (l pebbleLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...), slog.String("component", "pebble"))
}

func (l pebbleLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), slog.String("component", "pebble"))
}

func (l pebbleLogger) Fatalf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), slog.String("component", "pebble"))
	os.Exit(1)
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.String("api-key", "", "API key (defaults to $OPENAI_API_KEY)")
	flags.String("organization", "", "organization to bill requests to (defaults to $OPENAI_ORGANIZATION)")
	flags.String("base-url", "", "API origin (defaults to $GPT3_BASE_URL, or "+gpt3.DefaultBaseURL+")")
	flags.BoolP("verbose", "v", false, "log every request to stderr")
	flags.Bool("no-history", false, "do not record requests")
	flags.String("history-path", history.DefaultPath, "directory of the request history database")
	flags.BoolP("temporary", "t", false, "use a temporary in-memory history")
	flags.Bool("raw", false, "print raw JSON response bodies")
}
