package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cleitonmarx/symbiont"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "mcpbridge",
	Short: "Chat with a Kubernetes cluster through an LLM and a remote MCP tool server",
	Long: "mcpbridge connects an LLM to a remote MCP tool server. The model requests tools with\n" +
		"call_tool(...) directives which the bridge executes and replaces with their results.",
	SilenceUsage: true,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(askCmd)
}

var errStoppedEarly = errors.New("bridge stopped before the command completed")

// runOnce runs a with a single hosted job and returns the job result once it reports on result.
func runOnce(ctx context.Context, a *symbiont.App, result <-chan error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownCh := a.RunAsync(ctx)
	select {
	case err := <-result:
		cancel()
		<-shutdownCh
		return err
	case err := <-shutdownCh:
		if err == nil {
			err = errStoppedEarly
		}
		return err
	}
}

// quietLogs sends the bridge logs to stderr unless LOG_OUTPUT is set, keeping stdout for results.
func quietLogs() {
	if _, ok := os.LookupEnv("LOG_OUTPUT"); !ok {
		os.Setenv("LOG_OUTPUT", "stderr") //nolint:errcheck
	}
}
