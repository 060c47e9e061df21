package memory_test

import (
	"testing"

	"github.com/aretw0/cellgrid/pkg/adapters/memory"
	"github.com/aretw0/cellgrid/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSessionStoreContract(t, store)
}
