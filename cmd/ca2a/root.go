package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/localrivet/ca2a"
	"github.com/localrivet/ca2a/client"
	"github.com/localrivet/ca2a/items"
	"github.com/localrivet/ca2a/logx"
	"github.com/localrivet/ca2a/protocol"
	"github.com/localrivet/ca2a/render"
	"github.com/localrivet/ca2a/transport"
)

var verbose bool

// rootCmd represents the ca2a command itself; the tool has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "ca2a <url> <method> [item ...]",
	Short: "A command-line client for A2A agents",
	Long: `ca2a invokes JSON-RPC methods on an A2A (Agent-to-Agent) endpoint.

Items set request parameters and HTTP headers:
  key=value    string parameter
  key:=value   raw JSON parameter (e.g. count:=3, tags:='["a","b"]')
  key:value    HTTP header

Supported methods: ` + strings.Join(protocol.Methods, ", ") + `.`,
	Args: cobra.MinimumNArgs(2),
	// SilenceUsage is set to true to prevent printing usage message on
	// runtime errors; usage errors print it explicitly via usageError.
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	url, method := args[0], args[1]

	supported := false
	for _, m := range protocol.Methods {
		if method == m {
			supported = true
			break
		}
	}
	if !supported {
		return usageError(cmd, fmt.Errorf("%w: %s (choose from %s)",
			client.ErrUnsupportedMethod, method, strings.Join(protocol.Methods, ", ")))
	}

	params, headers, err := items.Parse(args[2:])
	if err != nil {
		return usageError(cmd, err)
	}

	logger := logx.NewDefaultLogger()
	if verbose {
		logger.SetLevel(logx.LevelDebug)
	}

	trans, err := transport.NewHTTPTransport(transport.Options{
		Endpoint: url,
		Headers:  headers,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	c, err := client.New(client.Options{
		Transport: trans,
		Renderer:  render.NewPrinter(os.Stdout),
		Out:       os.Stdout,
		Verbose:   verbose,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	return c.Invoke(cmd.Context(), method, params)
}

// usageError reports a pre-dispatch error together with the command usage,
// before any network activity has happened.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return err
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	rootCmd.Version = ca2a.Version
	rootCmd.SetVersionTemplate(`{{printf "ca2a version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output showing the JSON-RPC request/response")
}
