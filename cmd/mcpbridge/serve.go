package main

import (
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat UI, WebSocket and REST API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.NewBridgeApp().
			Introspect(&app.ReportLoggerIntrospector{}).
			Run()
	},
}
