package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/app"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/usecases"
	"github.com/spf13/cobra"
	"github.com/toon-format/toon-go"
)

var toolsOutput string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Discover the tool server and print its catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		quietLogs()
		result := make(chan error, 1)
		job := &toolsPrinter{out: cmd.OutOrStdout(), format: toolsOutput, result: result}
		a := symbiont.NewApp().
			Initialize(app.Components()...).
			Host(job)
		return runOnce(cmd.Context(), a, result)
	},
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsOutput, "output", "o", "table", "Output format: table, json or toon")
}

// toolsPrinter writes the discovered catalog once and reports on result.
type toolsPrinter struct {
	ListTools usecases.ListTools `resolve:""`
	out       io.Writer
	format    string
	result    chan<- error
}

func (p *toolsPrinter) Run(ctx context.Context) error {
	p.result <- printTools(p.out, p.format, p.ListTools.Query(ctx))
	<-ctx.Done()
	return nil
}

type toolRow struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema,omitempty"`
}

type toonToolRow struct {
	Name        string `toon:"name"`
	Description string `toon:"description"`
}

func printTools(w io.Writer, format string, tools []domain.Tool) error {
	rows := make([]toolRow, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, toolRow{Name: tool.Name, Description: tool.Description, Schema: tool.InputSchema})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "toon":
		toonRows := make([]toonToolRow, 0, len(rows))
		for _, row := range rows {
			toonRows = append(toonRows, toonToolRow{Name: row.Name, Description: row.Description})
		}
		s, err := toon.MarshalString(map[string]any{"tools": toonRows}, toon.WithLengthMarkers(true))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDESCRIPTION") //nolint:errcheck
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\n", row.Name, row.Description) //nolint:errcheck
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
