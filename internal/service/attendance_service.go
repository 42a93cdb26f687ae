package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
)

// analysisLimit caps how many records are serialized for the collaborator.
const analysisLimit = 20

type attendanceAnalyzer interface {
	AnalyzeAttendance(ctx context.Context, serializedRecords string) string
}

// AttendanceService coordinates attendance marking and analysis.
type AttendanceService struct {
	store     *store.Store
	analyzer  attendanceAnalyzer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(st *store.Store, analyzer attendanceAnalyzer, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AttendanceService{store: st, analyzer: analyzer, validator: validate, logger: logger}
	svc.validator.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	svc.validator.RegisterValidation("subject_kind", func(fl validator.FieldLevel) bool {
		kind := models.SubjectKind(strings.ToUpper(fl.Field().String()))
		return kind == models.SubjectKindStudent || kind == models.SubjectKindTeacher
	})
	return svc
}

// MarkAttendanceItem is one entry of a submitted sheet.
type MarkAttendanceItem struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Kind      string  `json:"kind" validate:"required,subject_kind"`
	SubjectID string  `json:"subject_id" validate:"required"`
	Status    string  `json:"status" validate:"required,attendance_status"`
	Remarks   *string `json:"remarks"`
}

// MarkAttendanceRequest is a whole sheet submission. Resubmitting the same
// sheet replaces earlier records for the same people and dates.
type MarkAttendanceRequest struct {
	Records []MarkAttendanceItem `json:"records" validate:"required,min=1,dive"`
}

// List returns attendance records, optionally narrowed to one date.
func (s *AttendanceService) List(ctx context.Context, date string) []models.AttendanceRecord {
	records := s.store.Attendance()
	if date == "" {
		return records
	}
	filtered := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date == date {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Mark validates and writes a sheet of records.
func (s *AttendanceService) Mark(ctx context.Context, req MarkAttendanceRequest) ([]models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	records := make([]models.AttendanceRecord, len(req.Records))
	for i, item := range req.Records {
		subject := models.AttendanceSubject{
			Kind: models.SubjectKind(strings.ToUpper(item.Kind)),
			ID:   item.SubjectID,
		}
		records[i] = models.AttendanceRecord{
			Date:    item.Date,
			Subject: subject,
			Status:  models.AttendanceStatus(strings.ToUpper(item.Status)),
			Remarks: item.Remarks,
		}
	}

	written, err := s.store.MarkAttendance(ctx, records)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark attendance")
	}
	return written, nil
}

// analyzedRecord is the enriched shape handed to the collaborator: names
// instead of ids so the generated text reads naturally.
type analyzedRecord struct {
	Student string `json:"student,omitempty"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// Analyze serializes recent records up to the given date and asks the
// collaborator for trends. The returned text is always success-shaped.
func (s *AttendanceService) Analyze(ctx context.Context, beforeDate string) string {
	names := make(map[string]string)
	for _, student := range s.store.Students() {
		names[student.ID] = student.Name
	}

	var relevant []analyzedRecord
	for _, rec := range s.store.Attendance() {
		if beforeDate != "" && rec.Date > beforeDate {
			continue
		}
		entry := analyzedRecord{Date: rec.Date, Status: string(rec.Status)}
		if rec.Subject.Kind == models.SubjectKindStudent {
			entry.Student = names[rec.Subject.ID]
		}
		relevant = append(relevant, entry)
	}
	if len(relevant) > analysisLimit {
		relevant = relevant[len(relevant)-analysisLimit:]
	}

	payload, err := json.Marshal(relevant)
	if err != nil {
		s.logger.Warn("failed to serialize attendance for analysis", zap.Error(err))
		payload = []byte("[]")
	}
	return s.analyzer.AnalyzeAttendance(ctx, string(payload))
}
