package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/edusphere-api/internal/service"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
	"github.com/edusphere/edusphere-api/pkg/response"
)

// FeeHandler exposes the fee ledger.
type FeeHandler struct {
	fees *service.FeeService
}

// NewFeeHandler constructs FeeHandler.
func NewFeeHandler(fees *service.FeeService) *FeeHandler {
	return &FeeHandler{fees: fees}
}

// List godoc
// @Summary List fee records
// @Tags Fees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.fees.List(c.Request.Context()))
}

// UpdateStatus godoc
// @Summary Update a fee record's payment state
// @Tags Fees
// @Accept json
// @Produce json
// @Param id path string true "Fee record ID"
// @Param payload body service.UpdateFeeStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /fees/{id}/status [patch]
func (h *FeeHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateFeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid fee status payload"))
		return
	}

	record, err := h.fees.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, record)
}
