package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/edusphere-api/internal/service"
	"github.com/edusphere/edusphere-api/pkg/response"
)

// ExportHandler serves rendered roster and ledger exports.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Students godoc
// @Summary Export the student roster
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /export/students [get]
func (h *ExportHandler) Students(c *gin.Context) {
	result, err := h.exports.Students(exportFormat(c))
	h.serve(c, result, err)
}

// Fees godoc
// @Summary Export the fee ledger
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /export/fees [get]
func (h *ExportHandler) Fees(c *gin.Context) {
	result, err := h.exports.Fees(exportFormat(c))
	h.serve(c, result, err)
}

func exportFormat(c *gin.Context) service.ExportFormat {
	format := c.DefaultQuery("format", string(service.ExportFormatCSV))
	return service.ExportFormat(format)
}

func (h *ExportHandler) serve(c *gin.Context, result *service.ExportResult, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
