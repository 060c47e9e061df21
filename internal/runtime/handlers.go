package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/cellgrid/internal/layout"
	"github.com/aretw0/cellgrid/pkg/domain"
)

// runOne validates and starts a single cell. Markdown or out-of-range
// targets produce an error outcome and emit nothing.
func (e *Engine) runOne(ctx context.Context, state *domain.State, cmd domain.Command, graph *domain.Graph, index int) domain.Result {
	if index < 0 || index >= graph.NodeCount() {
		return errorResult(cmd, fmt.Sprintf("Cell %d does not exist; the notebook has %d cells.", index+1, graph.NodeCount()))
	}
	if graph.Nodes[index].IsMarkdown {
		return errorResult(cmd, fmt.Sprintf("Cell %d is a markdown cell and cannot be run.", index+1))
	}

	state.Running[index] = true
	e.emit(ctx, state, domain.IntentRunCell, index, domain.RunPayload{
		FilePath:  state.FilePath,
		CellIndex: index,
	})
	return success(cmd, fmt.Sprintf("Running cell %d.", index+1))
}

// runRange starts every code cell in [start, end], clamped into the
// notebook and swapped when reversed. Markdown cells in range are counted
// as skipped, not erroneous.
func (e *Engine) runRange(ctx context.Context, state *domain.State, cmd domain.Command, graph *domain.Graph, start, end int) domain.Result {
	n := graph.NodeCount()
	if n == 0 {
		return info(cmd, "The notebook has no cells.")
	}

	if start > end {
		start, end = end, start
	}
	start = clamp(start, 0, n-1)
	end = clamp(end, 0, n-1)

	started, skipped := 0, 0
	for i := start; i <= end; i++ {
		if graph.Nodes[i].IsMarkdown {
			skipped++
			continue
		}
		state.Running[i] = true
		e.emit(ctx, state, domain.IntentRunCell, i, domain.RunPayload{
			FilePath:  state.FilePath,
			CellIndex: i,
		})
		started++
	}

	if started == 0 {
		return info(cmd, fmt.Sprintf("Nothing to run: all %d cells in range are markdown.", skipped))
	}
	msg := fmt.Sprintf("Running %d cells (%d-%d).", started, start+1, end+1)
	if skipped > 0 {
		msg = fmt.Sprintf("Running %d cells (%d-%d), %d markdown skipped.", started, start+1, end+1, skipped)
	}
	return success(cmd, msg)
}

// stop handles every stop-cell scope. Stops are best-effort and
// idempotent: stopping a cell that is not running still succeeds.
func (e *Engine) stop(ctx context.Context, state *domain.State, cmd domain.Command, graph *domain.Graph) domain.Result {
	switch cmd.Scope {
	case domain.StopScopeSelected:
		if state.SelectedIndex == domain.NoSelection {
			return errorResult(cmd, "No cell is selected. Try \"select cell 2\" first.")
		}
		return e.stopOne(ctx, state, cmd, state.SelectedIndex)

	case domain.StopScopeIndex:
		if cmd.Index < 0 || cmd.Index >= graph.NodeCount() {
			return errorResult(cmd, fmt.Sprintf("Cell %d does not exist; the notebook has %d cells.", cmd.Index+1, graph.NodeCount()))
		}
		return e.stopOne(ctx, state, cmd, cmd.Index)

	case domain.StopScopeAll:
		running := state.RunningIndices()
		if len(running) == 0 {
			return info(cmd, "Nothing is running.")
		}
		for _, i := range running {
			delete(state.Running, i)
			e.emit(ctx, state, domain.IntentStopCell, i, domain.RunPayload{
				FilePath:  state.FilePath,
				CellIndex: i,
			})
		}
		return success(cmd, fmt.Sprintf("Stopping %d running cells.", len(running)))

	default:
		return errorResult(cmd, "Unsupported stop scope.")
	}
}

func (e *Engine) stopOne(ctx context.Context, state *domain.State, cmd domain.Command, index int) domain.Result {
	delete(state.Running, index)
	e.emit(ctx, state, domain.IntentStopCell, index, domain.RunPayload{
		FilePath:  state.FilePath,
		CellIndex: index,
	})
	return success(cmd, fmt.Sprintf("Stopping cell %d.", index+1))
}

// selectCell updates the selection, re-centers the viewport on the
// target node, and for open-cell additionally requests the host's detail
// view through the synchronous open callback.
func (e *Engine) selectCell(state *domain.State, cmd domain.Command, graph *domain.Graph, index int, open bool) domain.Result {
	if index < 0 || index >= graph.NodeCount() {
		return errorResult(cmd, fmt.Sprintf("Cell %d does not exist; the notebook has %d cells.", index+1, graph.NodeCount()))
	}

	state.SelectedIndex = index

	node := graph.Nodes[index]
	x, y := layout.Resolve(node, state.Overrides)
	scale := state.Viewport.Scale
	state.Viewport.TranslateX = e.centerX - (x+node.Width/2)*scale
	state.Viewport.TranslateY = e.centerY - (y+node.Height/2)*scale

	if open {
		if e.openFn != nil {
			e.openFn(index)
		}
		return success(cmd, fmt.Sprintf("Opening cell %d.", index+1))
	}
	return success(cmd, fmt.Sprintf("Selected cell %d.", index+1))
}

func (e *Engine) clearSelection(state *domain.State, cmd domain.Command) domain.Result {
	if state.SelectedIndex == domain.NoSelection {
		return info(cmd, "Nothing was selected.")
	}
	state.SelectedIndex = domain.NoSelection
	return success(cmd, "Selection cleared.")
}

// addCell always emits an add intent; the persistence collaborator is
// responsible for actual insertion, so this never fails locally.
func (e *Engine) addCell(ctx context.Context, state *domain.State, cmd domain.Command) domain.Result {
	payload := domain.AddPayload{
		FilePath: state.FilePath,
		CellType: cmd.CellType,
		Content:  cmd.Content,
	}
	if state.SelectedIndex != domain.NoSelection {
		after := state.SelectedIndex
		payload.InsertAfter = &after
	}

	e.emit(ctx, state, domain.IntentAddCell, -1, payload)
	return success(cmd, fmt.Sprintf("Requested a new %s cell.", cmd.CellType))
}

func (e *Engine) zoom(state *domain.State, cmd domain.Command) domain.Result {
	switch cmd.Direction {
	case domain.ZoomIn:
		state.Viewport.Scale = clampFloat(state.Viewport.Scale*e.zoomStep, e.zoomMin, e.zoomMax)
	case domain.ZoomOut:
		state.Viewport.Scale = clampFloat(state.Viewport.Scale/e.zoomStep, e.zoomMin, e.zoomMax)
	case domain.ZoomReset:
		state.Viewport.Scale = 1.0
		state.Viewport.TranslateX = 0
		state.Viewport.TranslateY = 0
		return success(cmd, "View reset.")
	default:
		return errorResult(cmd, "Unsupported zoom direction.")
	}
	return success(cmd, fmt.Sprintf("Zoom is now %.0f%%.", state.Viewport.Scale*100))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
