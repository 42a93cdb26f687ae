package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/edusphere-api/internal/service"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
	"github.com/edusphere/edusphere-api/pkg/response"
)

// AskRequest carries a free-form prompt for the assistant panel.
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// DashboardHandler exposes derived statistics and the assistant panel.
type DashboardHandler struct {
	dashboard *service.DashboardService
	metrics   assistObserver
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService, metrics assistObserver) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, metrics: metrics}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Recomputed from current collections on every call
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.dashboard.Stats(c.Request.Context()))
}

// Ask godoc
// @Summary Ask the administrative assistant
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body AskRequest true "Prompt"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard/assist [post]
func (h *DashboardHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "prompt is required"))
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveAssistCall("generate_report")
	}
	text := h.dashboard.Ask(c.Request.Context(), req.Prompt)
	response.JSON(c, http.StatusOK, gin.H{"response": text})
}
