package repositories

import (
	"context"
	"sync"
	"time"

	"mkbarber.pl/models"

	"github.com/google/uuid"
)

// MemoryContactMessageRepository keeps contact messages in-process.
type MemoryContactMessageRepository struct {
	mu       sync.Mutex
	messages map[string]models.ContactMessage
}

// NewMemoryContactMessageRepository initializes an empty store.
func NewMemoryContactMessageRepository() *MemoryContactMessageRepository {
	return &MemoryContactMessageRepository{
		messages: make(map[string]models.ContactMessage),
	}
}

func (r *MemoryContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages[message.ID] = *message
	return nil
}

var _ IContactMessageRepository = (*MemoryContactMessageRepository)(nil)
