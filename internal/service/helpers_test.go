package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/store"
)

// memSnapshots is an in-memory stand-in for the sqlite snapshot table.
type memSnapshots struct {
	data map[string][]byte
}

func (m *memSnapshots) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	payload, ok := m.data[slot]
	return payload, ok, nil
}

func (m *memSnapshots) Save(ctx context.Context, slot string, payload []byte) error {
	m.data[slot] = payload
	return nil
}

func (m *memSnapshots) Delete(ctx context.Context, slot string) error {
	delete(m.data, slot)
	return nil
}

func newStoreForTest(t *testing.T) *store.Store {
	t.Helper()
	return store.New(context.Background(), &memSnapshots{data: make(map[string][]byte)}, zap.NewNop())
}
