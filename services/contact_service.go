package services

import (
	"context"
	"fmt"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"
	"mkbarber.pl/repositories"

	"go.uber.org/zap"
)

// ContactServiceError is a user-facing contact form failure.
type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const ErrContactMessageFailed ContactServiceError = "nie udało się zapisać wiadomości"

// IContactService stores contact form submissions.
type IContactService interface {
	CreateContactMessage(ctx context.Context, req ContactRequest) (*models.ContactMessage, error)
}

// ContactService implements IContactService.
type ContactService struct {
	repo repositories.IContactMessageRepository
}

// NewContactService wires the configured backend.
func NewContactService() IContactService {
	return &ContactService{repo: repositories.NewContactMessageRepository()}
}

// NewContactServiceWith injects the repository, for tests.
func NewContactServiceWith(repo repositories.IContactMessageRepository) IContactService {
	return &ContactService{repo: repo}
}

// CreateContactMessage validates the form (all violations at once) and
// persists the message. Nothing reads these back in the core.
func (s *ContactService) CreateContactMessage(ctx context.Context, req ContactRequest) (*models.ContactMessage, error) {
	if verr := ValidateContactRequest(req); verr.HasErrors() {
		return nil, verr
	}

	message := &models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		configslog.Log.Error("ContactService.CreateContactMessage: store error", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrContactMessageFailed, err)
	}

	configslog.SLog.Infof("Zapisano wiadomość kontaktową %s.", message.ID)
	return message, nil
}

var _ IContactService = (*ContactService)(nil)
