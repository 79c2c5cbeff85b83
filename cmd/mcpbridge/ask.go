package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/app"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/usecases"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Run a single chat turn and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quietLogs()
		result := make(chan error, 1)
		job := &turnRunner{out: cmd.OutOrStdout(), message: strings.Join(args, " "), result: result}
		a := symbiont.NewApp().
			Initialize(app.Components()...).
			Host(job)
		return runOnce(cmd.Context(), a, result)
	},
}

// turnRunner executes one chat turn and reports on result.
type turnRunner struct {
	Chat    usecases.Chat `resolve:""`
	out     io.Writer
	message string
	result  chan<- error
}

func (r *turnRunner) Run(ctx context.Context) error {
	_, err := fmt.Fprintln(r.out, r.Chat.Execute(ctx, r.message))
	r.result <- err
	<-ctx.Done()
	return nil
}
