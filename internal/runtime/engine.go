package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/cellgrid/internal/logging"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
	"github.com/google/uuid"
)

// Zoom and viewport defaults.
const (
	DefaultZoomStep = 1.2
	DefaultZoomMin  = 0.6
	DefaultZoomMax  = 2.4

	defaultCenterX = 480
	defaultCenterY = 320
)

// OpenFunc is the synchronous callback requesting the hosting view to
// show a cell's detail.
type OpenFunc func(cellIndex int)

// Engine turns parsed commands into state transitions and outbound
// intents. It holds no session state of its own; the caller owns the
// State and passes it in.
type Engine struct {
	dispatcher ports.IntentDispatcher
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	openFn     OpenFunc

	zoomStep float64
	zoomMin  float64
	zoomMax  float64
	centerX  float64
	centerY  float64

	newID func() string
	now   func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) { e.hooks = hooks }
}

// WithOpenHandler sets the callback invoked by open-cell commands.
func WithOpenHandler(fn OpenFunc) Option {
	return func(e *Engine) { e.openFn = fn }
}

// WithZoomBounds overrides the zoom step and clamp range.
func WithZoomBounds(step, minScale, maxScale float64) Option {
	return func(e *Engine) {
		e.zoomStep = step
		e.zoomMin = minScale
		e.zoomMax = maxScale
	}
}

// WithClock overrides ID and time sources, for tests.
func WithClock(newID func() string, now func() time.Time) Option {
	return func(e *Engine) {
		e.newID = newID
		e.now = now
	}
}

// NewEngine creates a runtime engine emitting intents to dispatcher.
// A nil dispatcher is valid: intents are then dropped with a warning,
// which keeps local-only embedding (tests, dry inspection) working.
func NewEngine(dispatcher ports.IntentDispatcher, opts ...Option) *Engine {
	e := &Engine{
		dispatcher: dispatcher,
		logger:     logging.NewNop(),
		zoomStep:   DefaultZoomStep,
		zoomMin:    DefaultZoomMin,
		zoomMax:    DefaultZoomMax,
		centerX:    defaultCenterX,
		centerY:    defaultCenterY,
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply executes one interpreted command against state. rawText is the
// user's original wording, recorded in history. graph supplies cell
// count, markdown flags and positions; it is read, never written.
//
// Apply always returns a result and always appends one history entry;
// range errors and no-op conditions surface as outcomes, not Go errors.
func (e *Engine) Apply(ctx context.Context, state *domain.State, rawText string, cmd domain.Command, graph *domain.Graph) domain.Result {
	result := e.dispatch(ctx, state, cmd, graph)

	entry := domain.CommandHistoryEntry{
		ID:        e.newID(),
		Command:   rawText,
		Message:   result.Message,
		Outcome:   result.Outcome,
		Timestamp: e.now(),
	}
	state.PushHistory(entry)

	if e.hooks.OnCommand != nil {
		e.hooks.OnCommand(ctx, &domain.CommandEvent{
			Timestamp: entry.Timestamp,
			FilePath:  state.FilePath,
			Kind:      cmd.Kind,
			Outcome:   result.Outcome,
			Message:   result.Message,
		})
	}

	e.logger.DebugContext(ctx, "command applied",
		"kind", cmd.Kind,
		"outcome", result.Outcome,
		"msg", result.Message,
	)
	return result
}

func (e *Engine) dispatch(ctx context.Context, state *domain.State, cmd domain.Command, graph *domain.Graph) domain.Result {
	switch cmd.Kind {
	case domain.CommandHelp:
		return info(cmd, helpText)
	case domain.CommandClearSelection:
		return e.clearSelection(state, cmd)
	case domain.CommandZoom:
		return e.zoom(state, cmd)
	case domain.CommandRunCell:
		return e.runOne(ctx, state, cmd, graph, cmd.Index)
	case domain.CommandRunSelected:
		if state.SelectedIndex == domain.NoSelection {
			return errorResult(cmd, "No cell is selected. Try \"select cell 2\" first.")
		}
		return e.runOne(ctx, state, cmd, graph, state.SelectedIndex)
	case domain.CommandRunAll:
		return e.runRange(ctx, state, cmd, graph, 0, graph.NodeCount()-1)
	case domain.CommandRunRange:
		return e.runRange(ctx, state, cmd, graph, cmd.Start, cmd.End)
	case domain.CommandStopCell:
		return e.stop(ctx, state, cmd, graph)
	case domain.CommandSelectCell:
		return e.selectCell(state, cmd, graph, cmd.Index, false)
	case domain.CommandOpenCell:
		return e.selectCell(state, cmd, graph, cmd.Index, true)
	case domain.CommandAddCell:
		return e.addCell(ctx, state, cmd)
	default:
		return errorResult(cmd, "Sorry, I didn't understand that. Type \"help\" to see what I can do.")
	}
}

// Ack handles an executor acknowledgement. Signals for other notebooks
// are ignored; removal from the running set is an idempotent no-op when
// the index is not tracked.
func (e *Engine) Ack(ctx context.Context, state *domain.State, sig domain.AckSignal) {
	if sig.FilePath != state.FilePath {
		return
	}
	delete(state.Running, sig.CellIndex)

	if e.hooks.OnAck != nil {
		e.hooks.OnAck(ctx, &sig)
	}
	e.logger.DebugContext(ctx, "executor ack",
		"cell", sig.CellIndex,
		"ack", sig.Kind,
	)
}

func (e *Engine) emit(ctx context.Context, state *domain.State, intentType string, cellIndex int, payload any) {
	if e.hooks.OnIntent != nil {
		e.hooks.OnIntent(ctx, &domain.IntentEvent{
			Timestamp: e.now(),
			FilePath:  state.FilePath,
			Type:      intentType,
			CellIndex: cellIndex,
		})
	}
	if e.dispatcher == nil {
		e.logger.WarnContext(ctx, "no dispatcher configured, intent dropped", "type", intentType)
		return
	}
	if err := e.dispatcher.Dispatch(ctx, domain.IntentRequest{Type: intentType, Payload: payload}); err != nil {
		// Fire and forget: a failed dispatch behaves like executor
		// silence, recovered only by an explicit stop.
		e.logger.WarnContext(ctx, "intent dispatch failed", "type", intentType, "err", err)
	}
}

func info(cmd domain.Command, msg string) domain.Result {
	return domain.Result{Command: cmd, Outcome: domain.OutcomeInfo, Message: msg}
}

func success(cmd domain.Command, msg string) domain.Result {
	return domain.Result{Command: cmd, Outcome: domain.OutcomeSuccess, Message: msg}
}

func errorResult(cmd domain.Command, msg string) domain.Result {
	return domain.Result{Command: cmd, Outcome: domain.OutcomeError, Message: msg}
}

const helpText = `You can say things like:
  run cell 3 / run cells 2 to 5 / run all / run selected
  stop cell 3 / stop selected / stop all
  select cell 2 / open cell 4 / clear selection
  add a markdown note saying <text> / add a code cell / add a summary
  zoom in / zoom out / reset zoom`
