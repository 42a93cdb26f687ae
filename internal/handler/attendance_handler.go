package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/edusphere-api/internal/service"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
	"github.com/edusphere/edusphere-api/pkg/response"
)

type assistObserver interface {
	ObserveAssistCall(operation string)
}

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
	metrics    assistObserver
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService, metrics assistObserver) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, metrics: metrics}
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param date query string false "Narrow to one date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.attendance.List(c.Request.Context(), c.Query("date")))
}

// Mark godoc
// @Summary Submit an attendance sheet
// @Description Replaces earlier records for the same (person, date) pairs
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.MarkAttendanceRequest true "Sheet payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req service.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	records, err := h.attendance.Mark(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, records)
}

// Analyze godoc
// @Summary Ask the assistant for attendance trends
// @Tags Attendance
// @Produce json
// @Param before query string false "Only consider records up to this date"
// @Success 200 {object} response.Envelope
// @Router /attendance/analyze [get]
func (h *AttendanceHandler) Analyze(c *gin.Context) {
	if h.metrics != nil {
		h.metrics.ObserveAssistCall("analyze_attendance")
	}
	text := h.attendance.Analyze(c.Request.Context(), c.Query("before"))
	response.JSON(c, http.StatusOK, gin.H{"analysis": text})
}
