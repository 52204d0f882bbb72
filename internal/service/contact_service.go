package service

import (
	"context"
	"time"

	"skillcycle/internal/content"
	"skillcycle/internal/dto"
	"skillcycle/internal/logger"
	"skillcycle/internal/util"
	"skillcycle/internal/validation"

	"go.uber.org/zap"
)

const contactAcknowledgement = "Thank you for your interest! We'll be in touch soon."

// ContactService accepts Get Involved submissions. Nothing is stored; the
// submission is written to the log.
type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	validator *validation.Validator
	now       func() time.Time
}

// NewContactService creates a ContactService accepting the catalog's inquiry types
func NewContactService(catalog *content.Catalog) ContactService {
	return &contactService{
		validator: validation.NewValidator(catalog.InquiryTypeValues()...),
		now:       time.Now,
	}
}

// Submit implements ContactService
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	if errs := s.validator.ValidateContactRequest(req); len(errs) > 0 {
		logger.Get().Debug("ContactService: submission rejected", zap.Int("error_count", len(errs)))
		return nil, errs
	}

	resp := &dto.ContactResponse{
		Reference:  util.NewULID(),
		Message:    contactAcknowledgement,
		ReceivedAt: s.now().UTC(),
	}
	logger.Get().Info("ContactService: submission received",
		zap.String("reference", resp.Reference),
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("organization", req.Organization),
		zap.String("type", req.Type),
		zap.Int("message_length", len(req.Message)))
	return resp, nil
}
