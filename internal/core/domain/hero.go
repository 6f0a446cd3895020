package domain

import (
	"time"

	"github.com/google/uuid"
)

type Hero struct {
	ID        int
	UUID      uuid.UUID
	Name      string `validate:"required,min=2,max=255"`
	Power     string `validate:"max=255"`
	UserId    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h *Hero) BelongsToUser(userID int) bool {
	return h.UserId == userID
}

func (h *Hero) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         h.ID,
		"uuid":       h.UUID,
		"name":       h.Name,
		"power":      h.Power,
		"user_id":    h.UserId,
		"created_at": h.CreatedAt,
		"updated_at": h.UpdatedAt,
	}
}
