package cellgrid

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/cellgrid/internal/command"
	"github.com/aretw0/cellgrid/internal/extract"
	"github.com/aretw0/cellgrid/internal/graphbuild"
	"github.com/aretw0/cellgrid/internal/layout"
	"github.com/aretw0/cellgrid/internal/logging"
	"github.com/aretw0/cellgrid/internal/runtime"
	"github.com/aretw0/cellgrid/pkg/adapters/ipynb"
	"github.com/aretw0/cellgrid/pkg/adapters/memory"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
)

// Engine is the high-level entry point for the cellgrid library. It wires
// the interpreter, the graph builder and the command runtime behind a
// session-oriented API.
type Engine struct {
	interpreter *command.Interpreter
	builder     *graphbuild.Builder
	runtime     *runtime.Engine

	loader     ports.NotebookLoader
	store      ports.SessionStore
	dispatcher ports.IntentDispatcher
	extractor  ports.SymbolExtractor

	layoutCfg layout.Config
	hooks     domain.LifecycleHooks
	logger    *slog.Logger

	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a notebook loader, replacing the default ipynb
// file loader.
func WithLoader(l ports.NotebookLoader) Option {
	return func(e *Engine) { e.loader = l }
}

// WithStore injects a session store, replacing the default in-memory one.
func WithStore(s ports.SessionStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithDispatcher sets the intent dispatcher connecting the engine to an
// executor. Without one, run/stop/add intents are dropped with a warning.
func WithDispatcher(d ports.IntentDispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

// WithExtractor replaces the default lexical Python extractor.
func WithExtractor(x ports.SymbolExtractor) Option {
	return func(e *Engine) { e.extractor = x }
}

// WithLayout overrides the grid layout configuration.
func WithLayout(cfg layout.Config) Option {
	return func(e *Engine) { e.layoutCfg = cfg }
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) { e.hooks = hooks }
}

// WithOpenHandler sets the callback invoked by open-cell commands.
func WithOpenHandler(fn runtime.OpenFunc) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithOpenHandler(fn))
	}
}

// WithZoomBounds overrides the zoom step and clamp range.
func WithZoomBounds(step, minScale, maxScale float64) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithZoomBounds(step, minScale, maxScale))
	}
}

// New initializes a cellgrid Engine with defaults: .ipynb file loading,
// in-memory session persistence and no executor.
func New(opts ...Option) *Engine {
	e := &Engine{
		layoutCfg: layout.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.loader == nil {
		e.loader = ipynb.NewLoader()
	}
	if e.store == nil {
		e.store = memory.NewStore()
	}
	if e.extractor == nil {
		e.extractor = extract.New()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	e.interpreter = command.New()
	e.builder = graphbuild.New(e.extractor, graphbuild.WithLogger(e.logger))

	rtOpts := append([]runtime.Option{
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
	}, e.runtimeOpts...)
	e.runtime = runtime.NewEngine(e.dispatcher, rtOpts...)

	return e
}

// Interpreter exposes the command interpreter for hosts that only need
// parsing (e.g. input preview).
func (e *Engine) Interpreter() *command.Interpreter {
	return e.interpreter
}

// Sessions lists the notebook paths with persisted session state.
func (e *Engine) Sessions(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// Open loads the notebook at path, builds its dependency graph and
// restores (or creates) the session state. The returned Session is safe
// for concurrent use.
func (e *Engine) Open(ctx context.Context, path string) (*Session, error) {
	s := &Session{engine: e, path: path}
	if err := s.refreshLocked(ctx); err != nil {
		return nil, err
	}

	state, err := e.store.Load(ctx, path)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, err
		}
		state = domain.NewState(path)
	}
	s.state = state
	return s, nil
}

// Session binds one open notebook to its graph and state.
type Session struct {
	engine *Engine
	path   string

	mu    sync.Mutex
	graph *domain.Graph
	state *domain.State
}

// Path returns the notebook path this session is bound to.
func (s *Session) Path() string { return s.path }

// Graph returns the current dependency graph. The graph is replaced, not
// mutated, on refresh, so holding the returned pointer is safe.
func (s *Session) Graph() *domain.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph
}

// State returns a snapshot of the session state.
func (s *Session) State() *domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Refresh reloads the notebook and rebuilds the graph wholesale.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	start := time.Now()
	cells, states, err := s.engine.loader.Load(ctx, s.path)
	if err != nil {
		return err
	}

	g := s.engine.builder.Build(ctx, cells, states)
	layout.Apply(g, s.engine.layoutCfg)
	s.graph = g

	if s.engine.hooks.OnGraphBuild != nil {
		s.engine.hooks.OnGraphBuild(ctx, &domain.GraphEvent{
			Timestamp: time.Now(),
			FilePath:  s.path,
			Nodes:     len(g.Nodes),
			Edges:     len(g.Edges),
			Duration:  time.Since(start),
		})
	}
	return nil
}

// Submit interprets one line of user text, applies it and persists the
// resulting state. Interpretation is total: unrecognized input yields an
// error-outcome Result, not a Go error. The returned error covers
// persistence only.
func (s *Session) Submit(ctx context.Context, text string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := s.engine.interpreter.Interpret(text)
	result := s.engine.runtime.Apply(ctx, s.state, text, cmd, s.graph)

	if err := s.engine.store.Save(ctx, s.path, s.state); err != nil {
		return result, err
	}
	return result, nil
}

// Ack applies an executor acknowledgement and persists the state.
func (s *Session) Ack(ctx context.Context, sig domain.AckSignal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.runtime.Ack(ctx, s.state, sig)
	return s.engine.store.Save(ctx, s.path, s.state)
}

// SetOverride records a user-drag position for a node and persists it.
func (s *Session) SetOverride(ctx context.Context, index int, pos domain.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Overrides[index] = pos
	return s.engine.store.Save(ctx, s.path, s.state)
}

// Close removes the persisted session state, ending the session.
func (s *Session) Close(ctx context.Context) error {
	return s.engine.store.Delete(ctx, s.path)
}
