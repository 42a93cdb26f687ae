package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
)

// CreateTeacherRequest holds payload for adding staff.
type CreateTeacherRequest struct {
	Name     string  `json:"name" validate:"required"`
	Subject  string  `json:"subject" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required"`
	Salary   float64 `json:"salary" validate:"gte=0"`
	JoinDate string  `json:"join_date" validate:"required,datetime=2006-01-02"`
}

// TeacherService handles staff roster use-cases.
type TeacherService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: st, validator: validate, logger: logger}
}

// List returns the staff roster in insertion order.
func (s *TeacherService) List(ctx context.Context) []models.Teacher {
	return s.store.Teachers()
}

// Create adds a new teacher. The store assigns the id.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher, err := s.store.AddTeacher(ctx, models.Teacher{
		Name:     req.Name,
		Subject:  req.Subject,
		Email:    req.Email,
		Phone:    req.Phone,
		Salary:   req.Salary,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return &teacher, nil
}
