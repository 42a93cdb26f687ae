package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/edusphere-api/internal/service"
	"github.com/edusphere/edusphere-api/pkg/response"
)

// ScheduleHandler exposes the class timetable.
type ScheduleHandler struct {
	schedule *service.ScheduleService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedule *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// List godoc
// @Summary List class sessions
// @Tags Schedule
// @Produce json
// @Param grade query string false "Narrow to one grade"
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	grade := c.Query("grade")
	if grade != "" {
		response.JSON(c, http.StatusOK, h.schedule.ListByGrade(c.Request.Context(), grade))
		return
	}
	response.JSON(c, http.StatusOK, h.schedule.List(c.Request.Context()))
}
