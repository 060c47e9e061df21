package main

import (
	"encoding/json"
	"fmt"
	"os"

	pres "github.com/aretw0/cellgrid/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [notebook]",
	Short: "Export the notebook dependency graph",
	Long:  `Analyzes the notebook and outputs its dependency graph as a Mermaid diagram (graph TD) or as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		path := notebookPath(cmd, args)
		format, _ := cmd.Flags().GetString("format")

		engine := newEngine(cfg, nil)
		session, err := engine.Open(cmd.Context(), path)
		if err != nil {
			fmt.Printf("Error opening notebook: %v\n", err)
			os.Exit(1)
		}

		g := session.Graph()
		switch format {
		case "json":
			data, err := json.MarshalIndent(g, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling graph: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		case "mermaid":
			fmt.Print(pres.GenerateMermaid(g, pres.OverlayFromState(session.State(), g)))
		default:
			fmt.Printf("Error: unknown format %q (want mermaid or json)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid or json")
}
