package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
)

// CreateStudentRequest holds payload for enrolling students.
type CreateStudentRequest struct {
	Name           string `json:"name" validate:"required"`
	Grade          string `json:"grade" validate:"required"`
	ParentName     string `json:"parent_name" validate:"required"`
	Contact        string `json:"contact" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address"`
	EnrollmentDate string `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
}

// StudentService handles student roster use-cases.
type StudentService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, validator: validate, logger: logger}
}

// List returns the roster in insertion order.
func (s *StudentService) List(ctx context.Context) []models.Student {
	return s.store.Students()
}

// Create enrolls a new student. The store assigns the id.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.store.AddStudent(ctx, models.Student{
		Name:           req.Name,
		Grade:          req.Grade,
		ParentName:     req.ParentName,
		Contact:        req.Contact,
		Email:          req.Email,
		Address:        req.Address,
		EnrollmentDate: req.EnrollmentDate,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return &student, nil
}
