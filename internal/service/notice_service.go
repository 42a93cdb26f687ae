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

// CreateNoticeRequest holds payload for posting a notice. Date is optional;
// the store stamps the current date when absent.
type CreateNoticeRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Author   string   `json:"author" validate:"required"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Audience []string `json:"audience" validate:"required,min=1,dive,notice_role"`
}

// NoticeService handles the notice board.
type NoticeService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs the notice service.
func NewNoticeService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &NoticeService{store: st, validator: validate, logger: logger}
	svc.validator.RegisterValidation("notice_role", func(fl validator.FieldLevel) bool {
		return models.Role(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// List returns the board newest-first.
func (s *NoticeService) List(ctx context.Context) []models.Notice {
	return s.store.Notices()
}

// Create posts a notice to the top of the board.
func (s *NoticeService) Create(ctx context.Context, req CreateNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}

	audience := make([]models.Role, len(req.Audience))
	for i, role := range req.Audience {
		audience[i] = models.Role(strings.ToUpper(role))
	}

	notice, err := s.store.AddNotice(ctx, models.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Audience: audience,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to post notice")
	}
	return &notice, nil
}
