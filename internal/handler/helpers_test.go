package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

func newTestContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	envelope := decodeEnvelope(t, w)
	require.Contains(t, envelope, "data")
	return envelope["data"]
}
