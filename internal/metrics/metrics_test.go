package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_FeedCollectors(t *testing.T) {
	m := New()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnCommand(ctx, &domain.CommandEvent{Kind: domain.CommandRunCell, Outcome: domain.OutcomeSuccess})
	hooks.OnCommand(ctx, &domain.CommandEvent{Kind: domain.CommandRunCell, Outcome: domain.OutcomeSuccess})
	hooks.OnIntent(ctx, &domain.IntentEvent{Type: domain.IntentRunCell})
	hooks.OnAck(ctx, &domain.AckSignal{Kind: domain.AckCompleted})
	hooks.OnGraphBuild(ctx, &domain.GraphEvent{Edges: 7, Duration: time.Millisecond})

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("run-cell", "success")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.intents.WithLabelValues("RUN_CELL")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.acks.WithLabelValues("completed")), 1e-9)
	assert.InDelta(t, 7.0, testutil.ToFloat64(m.buildSize), 1e-9)
}

func TestRegister_Twice(t *testing.T) {
	m := New()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg), "duplicate registration is rejected by prometheus")
}
