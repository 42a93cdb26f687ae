package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere-api/internal/service"
)

func newExportHandlerForTest(t *testing.T) *ExportHandler {
	t.Helper()
	return NewExportHandler(service.NewExportService(newStoreForTest(t), nil, nil, nil))
}

func TestExportHandlerStudentsDefaultsToCSV(t *testing.T) {
	h := newExportHandlerForTest(t)

	c, w := newTestContext(t, http.MethodGet, "/export/students", nil)
	h.Students(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=students.csv", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Alice Johnson")
}

func TestExportHandlerFeesPDF(t *testing.T) {
	h := newExportHandlerForTest(t)

	c, w := newTestContext(t, http.MethodGet, "/export/fees?format=pdf", nil)
	h.Fees(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=fees.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportHandlerRejectsUnknownFormat(t *testing.T) {
	h := newExportHandlerForTest(t)

	c, w := newTestContext(t, http.MethodGet, "/export/students?format=xlsx", nil)
	h.Students(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
