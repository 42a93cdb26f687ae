package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
)

// UpdateFeeStatusRequest carries the new payment state.
type UpdateFeeStatusRequest struct {
	Status string `json:"status" validate:"required,fee_status"`
}

// FeeService handles the fee ledger use-cases.
type FeeService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeeService constructs the fee service.
func NewFeeService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *FeeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &FeeService{store: st, validator: validate, logger: logger}
	svc.validator.RegisterValidation("fee_status", func(fl validator.FieldLevel) bool {
		return models.FeeStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// List returns the ledger in insertion order.
func (s *FeeService) List(ctx context.Context) []models.FeeRecord {
	return s.store.Fees()
}

// UpdateStatus changes one record's payment state. The store tolerates an
// unknown id as a no-op; here it surfaces as not-found so the HTTP layer
// can tell the caller.
func (s *FeeService) UpdateStatus(ctx context.Context, id string, req UpdateFeeStatusRequest) (*models.FeeRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid fee status payload")
	}

	status := models.FeeStatus(strings.ToUpper(req.Status))
	record, found, err := s.store.UpdateFeeStatus(ctx, id, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update fee status")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "fee record not found")
	}
	return &record, nil
}
