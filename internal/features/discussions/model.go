package discussions

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type DiscussionMessage struct {
	ID          uuid.UUID `json:"id"          gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"userId"      gorm:"type:uuid;not null"`
	Message     string    `json:"message"     gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"not null"`
}

func (DiscussionMessage) TableName() string {
	return "discussion_messages"
}

func init() {
	storage.RegisterModels(&DiscussionMessage{})
}
