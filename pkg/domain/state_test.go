package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPushHistory_BoundedNewestFirst(t *testing.T) {
	st := domain.NewState("nb.ipynb")

	for i := 1; i <= 7; i++ {
		st.PushHistory(domain.CommandHistoryEntry{
			ID:        fmt.Sprintf("id-%d", i),
			Command:   fmt.Sprintf("run cell %d", i),
			Outcome:   domain.OutcomeSuccess,
			Timestamp: time.Now(),
		})
	}

	assert.Len(t, st.History, domain.HistoryCapacity)
	assert.Equal(t, "id-7", st.History[0].ID, "newest entry first")
	assert.Equal(t, "id-3", st.History[len(st.History)-1].ID, "oldest surviving entry is FIFO-evicted boundary")
}

func TestRunningIndices_Sorted(t *testing.T) {
	st := domain.NewState("nb.ipynb")
	st.Running[4] = true
	st.Running[0] = true
	st.Running[2] = true

	assert.Equal(t, []int{0, 2, 4}, st.RunningIndices())
}

func TestClone_Isolation(t *testing.T) {
	st := domain.NewState("nb.ipynb")
	st.Running[1] = true
	st.Overrides[3] = domain.Position{X: 10, Y: 20}

	c := st.Clone()
	c.Running[2] = true
	c.Overrides[3] = domain.Position{X: 99, Y: 99}

	assert.False(t, st.Running[2], "clone mutation must not leak back")
	assert.Equal(t, domain.Position{X: 10, Y: 20}, st.Overrides[3])
}
