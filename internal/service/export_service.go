package service

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/store"
	"github.com/edusphere/edusphere-api/pkg/export"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type tableRenderer interface {
	Render(table export.Table) ([]byte, error)
}

// ExportResult carries a rendered document back to the handler.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders roster and fee-ledger exports straight from the
// store. Rendering is synchronous; the collections are small enough that a
// job queue would be overhead.
type ExportService struct {
	store  *store.Store
	csv    tableRenderer
	pdf    tableRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(st *store.Store, csv tableRenderer, pdf tableRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVWriter()
	}
	if pdf == nil {
		pdf = export.NewPDFWriter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{store: st, csv: csv, pdf: pdf, logger: logger}
}

// Students renders the student roster.
func (s *ExportService) Students(format ExportFormat) (*ExportResult, error) {
	table := export.Table{
		Title:   "Student Roster",
		Columns: []string{"Name", "Grade", "Parent", "Contact", "Email", "Enrolled"},
	}
	for _, student := range s.store.Students() {
		table.Rows = append(table.Rows, []string{
			student.Name,
			student.Grade,
			student.ParentName,
			student.Contact,
			student.Email,
			student.EnrollmentDate,
		})
	}
	return s.render(format, "students", table)
}

// Fees renders the fee ledger.
func (s *ExportService) Fees(format ExportFormat) (*ExportResult, error) {
	table := export.Table{
		Title:   "Fee Ledger",
		Columns: []string{"Title", "Student", "Amount", "Due", "Status", "Paid On"},
	}
	for _, fee := range s.store.Fees() {
		table.Rows = append(table.Rows, []string{
			fee.Title,
			fee.StudentID,
			strconv.FormatFloat(fee.Amount, 'f', 2, 64),
			fee.DueDate,
			string(fee.Status),
			derefString(fee.PaymentDate),
		})
	}
	return s.render(format, "fees", table)
}

func (s *ExportService) render(format ExportFormat, name string, table export.Table) (*ExportResult, error) {
	switch format {
	case ExportFormatCSV:
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Filename: name + ".csv", ContentType: "text/csv", Data: data}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Filename: name + ".pdf", ContentType: "application/pdf", Data: data}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
