package discussions

import (
	"time"

	"github.com/google/uuid"
)

type PostMessageRequestDTO struct {
	Message string `json:"message" binding:"required"`
}

type MessageResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
