package repositories

import (
	"context"
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IContactMessageRepository stores contact form submissions. Write-only from
// the application's point of view.
type IContactMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

// GormContactMessageRepository implements IContactMessageRepository over
// Postgres.
type GormContactMessageRepository struct {
	db *gorm.DB
}

func (r *GormContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	if message == nil {
		return errors.New("brak danych wiadomości")
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		configslog.Log.Error("ContactMessageRepository.Create: DB error", zap.Error(err))
		return err
	}
	return nil
}

var _ IContactMessageRepository = (*GormContactMessageRepository)(nil)
