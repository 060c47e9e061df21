package cellgrid_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/cellgrid"
	"github.com/aretw0/cellgrid/pkg/adapters/memory"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu       sync.Mutex
	requests []domain.IntentRequest
}

func (d *recordingDispatcher) Dispatch(_ context.Context, req domain.IntentRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, req)
	return nil
}

func (d *recordingDispatcher) all() []domain.IntentRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.IntentRequest(nil), d.requests...)
}

func fixtureLoader() *memory.Loader {
	loader := memory.NewLoader()
	loader.SetNotebook("nb.ipynb",
		[]domain.Cell{
			{Type: domain.CellTypeCode, Source: "df = load_data()"},
			{Type: domain.CellTypeMarkdown, Source: "# Exploration"},
			{Type: domain.CellTypeCode, Source: "summary = df.describe()"},
		},
		nil,
	)
	return loader
}

func newTestEngine(t *testing.T) (*cellgrid.Engine, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	eng := cellgrid.New(
		cellgrid.WithLoader(fixtureLoader()),
		cellgrid.WithDispatcher(dispatcher),
	)
	return eng, dispatcher
}

func TestOpen_BuildsGraphAndLayout(t *testing.T) {
	eng, _ := newTestEngine(t)

	session, err := eng.Open(context.Background(), "nb.ipynb")
	require.NoError(t, err)

	g := session.Graph()
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 1, "df links cell 0 to cell 2")
	assert.Equal(t, 0, g.Edges[0].Source)
	assert.Equal(t, 2, g.Edges[0].Target)
	assert.True(t, g.Nodes[1].IsMarkdown)
	assert.Greater(t, g.Nodes[2].X, g.Nodes[0].X, "dependent cell sits one column right")
}

func TestOpen_MissingNotebook(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.Open(context.Background(), "absent.ipynb")
	assert.ErrorIs(t, err, domain.ErrNotebookNotFound)
}

func TestSubmit_RunCellDispatchesIntent(t *testing.T) {
	eng, dispatcher := newTestEngine(t)
	session, err := eng.Open(context.Background(), "nb.ipynb")
	require.NoError(t, err)

	result, err := session.Submit(context.Background(), "run cell 1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcome)

	reqs := dispatcher.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.IntentRunCell, reqs[0].Type)
	payload, ok := reqs[0].Payload.(domain.RunPayload)
	require.True(t, ok)
	assert.Equal(t, "nb.ipynb", payload.FilePath)
	assert.Equal(t, 0, payload.CellIndex)

	assert.True(t, session.State().Running[0])
}

func TestSubmit_UnknownIsResultNotError(t *testing.T) {
	eng, _ := newTestEngine(t)
	session, err := eng.Open(context.Background(), "nb.ipynb")
	require.NoError(t, err)

	result, err := session.Submit(context.Background(), "make me a sandwich")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeError, result.Outcome)
	assert.Contains(t, result.Message, "help")
}

func TestAck_ClearsRunning(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()
	session, err := eng.Open(ctx, "nb.ipynb")
	require.NoError(t, err)

	_, err = session.Submit(ctx, "run cell 1")
	require.NoError(t, err)
	require.True(t, session.State().Running[0])

	require.NoError(t, session.Ack(ctx, domain.AckSignal{
		FilePath:  "nb.ipynb",
		CellIndex: 0,
		Kind:      domain.AckCompleted,
	}))
	assert.False(t, session.State().Running[0])
}

func TestSessionState_SurvivesReopen(t *testing.T) {
	store := memory.NewStore()
	dispatcher := &recordingDispatcher{}
	eng := cellgrid.New(
		cellgrid.WithLoader(fixtureLoader()),
		cellgrid.WithDispatcher(dispatcher),
		cellgrid.WithStore(store),
	)
	ctx := context.Background()

	session, err := eng.Open(ctx, "nb.ipynb")
	require.NoError(t, err)
	_, err = session.Submit(ctx, "select cell 3")
	require.NoError(t, err)

	reopened, err := eng.Open(ctx, "nb.ipynb")
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.State().SelectedIndex)
	require.NotEmpty(t, reopened.State().History)
	assert.Equal(t, "select cell 3", reopened.State().History[0].Command)
}

func TestSessions_ListsPersistedPaths(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	session, err := eng.Open(ctx, "nb.ipynb")
	require.NoError(t, err)
	_, err = session.Submit(ctx, "zoom in")
	require.NoError(t, err)

	paths, err := eng.Sessions(ctx)
	require.NoError(t, err)
	assert.Contains(t, paths, "nb.ipynb")

	require.NoError(t, session.Close(ctx))
	paths, err = eng.Sessions(ctx)
	require.NoError(t, err)
	assert.NotContains(t, paths, "nb.ipynb")
}

func TestSetOverride_Persists(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()
	session, err := eng.Open(ctx, "nb.ipynb")
	require.NoError(t, err)

	require.NoError(t, session.SetOverride(ctx, 1, domain.Position{X: 42, Y: 24}))

	reopened, err := eng.Open(ctx, "nb.ipynb")
	require.NoError(t, err)
	assert.Equal(t, domain.Position{X: 42, Y: 24}, reopened.State().Overrides[1])
}

var _ ports.IntentDispatcher = (*recordingDispatcher)(nil)
