package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
)

type contactService struct {
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) CreateContact(ctx context.Context, req dto.CreateContactRequest) (*domain.Contact, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	contact := domain.Contact{
		ContactID:   uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		logger.Error("Failed to save contact", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	logger.Info("Contact created", slog.String("contact_id", contact.ContactID))
	return &contact, nil
}

func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact %s: %w", contactID, err)
	}
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
