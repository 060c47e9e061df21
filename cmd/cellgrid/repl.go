package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/cellgrid"
	"github.com/aretw0/cellgrid/internal/presentation/tui"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// replCmd represents the interactive command loop
var replCmd = &cobra.Command{
	Use:   "repl [notebook]",
	Short: "Drive the notebook graph interactively",
	Long:  `Opens the notebook and reads commands line by line: "run cell 3", "select cell 2", "zoom in", "help", and so on. Type exit to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		path := notebookPath(cmd, args)

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		renderMarkdown := tui.NewMarkdownRenderer()

		// The open handler needs the session, which exists only after
		// Open; capture through a pointer filled below.
		var session *cellgrid.Session

		engine := newEngine(cfg, nil,
			cellgrid.WithDispatcher(replDispatcher()),
			cellgrid.WithOpenHandler(func(cellIndex int) {
				if session == nil {
					return
				}
				showCell(session, cellIndex, renderMarkdown)
			}),
		)

		var err error
		session, err = engine.Open(cmd.Context(), path)
		if err != nil {
			fmt.Printf("Error opening notebook: %v\n", err)
			os.Exit(1)
		}

		if interactive {
			tui.PrintBanner()
			g := session.Graph()
			fmt.Printf("Opened %s: %d cells, %d dependencies. Type \"help\" for commands.\n\n", path, len(g.Nodes), len(g.Edges))
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if interactive {
				fmt.Print("> ")
			}
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			result, err := session.Submit(cmd.Context(), line)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println(tui.ColorizeOutcome(result.Outcome, result.Message))
		}
	},
}

// showCell prints the detail view for an opened cell, rendering markdown
// summaries through glamour.
func showCell(session *cellgrid.Session, cellIndex int, render func(string) (string, error)) {
	g := session.Graph()
	if cellIndex < 0 || cellIndex >= len(g.Nodes) {
		return
	}
	node := g.Nodes[cellIndex]

	fmt.Printf("\n--- cell %d ---\n", cellIndex+1)
	if node.IsMarkdown {
		if out, err := render("# " + node.Summary); err == nil {
			fmt.Print(out)
		} else {
			fmt.Println(node.Summary)
		}
	} else {
		fmt.Println(node.Summary)
		if len(node.InputVars) > 0 {
			fmt.Printf("  needs: %s\n", strings.Join(node.InputVars, ", "))
		}
		if len(node.OutputVars) > 0 {
			fmt.Printf("  defines: %s\n", strings.Join(node.OutputVars, ", "))
		}
		if len(node.ResourceReads) > 0 {
			fmt.Printf("  reads: %s\n", strings.Join(node.ResourceReads, ", "))
		}
		if len(node.ResourceWrites) > 0 {
			fmt.Printf("  writes: %s\n", strings.Join(node.ResourceWrites, ", "))
		}
	}
	fmt.Println()
}

// replDispatcher surfaces outbound intents as console lines so the loop
// stays usable without a connected executor.
func replDispatcher() ports.IntentDispatcher {
	return ports.DispatchFunc(func(_ context.Context, req domain.IntentRequest) error {
		switch p := req.Payload.(type) {
		case domain.RunPayload:
			fmt.Printf("  -> %s cell %d\n", req.Type, p.CellIndex+1)
		case domain.AddPayload:
			fmt.Printf("  -> %s (%s)\n", req.Type, p.CellType)
		default:
			fmt.Printf("  -> %s\n", req.Type)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(replCmd)

	// Keep bare "cellgrid <notebook>" working as the interactive loop.
	rootCmd.Run = replCmd.Run
}
