package commands

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mailapi-dev/mailapi-go"
)

const apiKeyEnv = "MAILAPI_API_KEY"

// app holds the state shared by subcommands for one invocation.
type app struct {
	apiKey  string
	baseURL string
	envFile string
	verbose bool

	client *mailapi.Client
}

func Execute() error {
	root := newRootCmd()

	err := root.Execute()
	if err != nil {
		// API failures have already been reported by printResult
		var apiErr *mailapi.Error
		if !errors.As(err, &apiErr) {
			root.PrintErrln("Error:", err)
		}
	}

	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "mailapi",
		Short:         "Send email and manage contacts with MailAPI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.apiKey, "api-key", "", "MailAPI key (default $"+apiKeyEnv+")")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API base URL (default "+mailapi.DefaultBaseURL+")")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every request")

	root.AddCommand(sendCmd(a), verifyCmd(a), addCmd(a), updateCmd(a), deleteCmd(a))
	return root
}

func (a *app) connect(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	key := a.apiKey
	if key == "" {
		key = os.Getenv(apiKeyEnv)
	}

	logger := &mailapi.StdLogger{
		Logger:  log.New(cmd.ErrOrStderr(), "", log.LstdFlags),
		Verbose: a.verbose,
	}

	opts := []mailapi.Option{mailapi.WithRequestLogger(logger)}
	if a.baseURL != "" {
		opts = append(opts, mailapi.WithBaseURL(a.baseURL))
	}

	client, err := mailapi.New(key, opts...)
	if err != nil {
		return err
	}

	a.client = client
	return nil
}

// printResult writes the raw response body on success. On failure it writes
// the error to stderr and returns it so the process exits non-zero.
func printResult[T any](cmd *cobra.Command, res mailapi.Result[T]) error {
	if res.Error != nil {
		cmd.PrintErrf("%s: %s\n", errorCode(res.Error), res.Error.Message)
		return res.Error
	}

	return writeJSON(cmd.OutOrStdout(), res.Raw)
}

func errorCode(err *mailapi.Error) string {
	if err.Code == "" {
		return "error"
	}
	return err.Code
}

func writeJSON(w io.Writer, raw []byte) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	_, err := w.Write(append(raw, '\n'))
	return err
}
